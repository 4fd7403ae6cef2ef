package handlers

import (
	"net/http"
	"time"

	"hraktech_web/models"
	"hraktech_web/motion"
	"hraktech_web/templates/components"
	"hraktech_web/templates/pages"
	"hraktech_web/ui"

	"github.com/labstack/echo/v4"
)

// Landing renders the single page site with an empty contact form.
func (s *Site) Landing(c echo.Context) error {
	return s.renderLanding(c, http.StatusOK, components.FormView{Definition: s.Content.Contact.Form})
}

// renderLanding mounts every interactive component in a request scope,
// serializes the resulting animation plan and renders the page. The scope is
// revoked once the page is written.
func (s *Site) renderLanding(c echo.Context, status int, form components.FormView) error {
	handle := s.motionHandle(c)
	scope := motion.NewScope(handle)
	defer scope.Revoke()

	nav := ui.NewNavbar(s.Content.Navigation)
	nav.Mount(scope)
	ui.MountHero(scope)
	ui.MountSections(scope)
	ui.NewContactForm(s.Content.Contact.Form, s.Config.ContactDisplayWindow).Mount(scope)
	carousel := ui.NewCarousel(len(s.Content.Testimonials.Items))

	var assets pages.MotionAssets
	if handle.Animated() {
		plan, err := scope.Plan()
		if err != nil {
			s.Log.Warn().Err(err).Msg("Failed to serialize animation plan")
		} else {
			assets = pages.MotionAssets{Plan: plan, BundleVersion: handle.Version()}
		}
	}

	vm := pages.LandingViewModel{
		Config: s.Content,
		SEO:    models.SEOFromContent(s.Content.SEO, s.Content.Company, s.Content.Theme, s.Config.AppURL),
		Navbar: nav,
		Carousel: components.CarouselView{
			Index:    carousel.Index(),
			Autoplay: carousel.Autoplay(),
			Interval: s.Config.CarouselInterval,
		},
		Form:   form,
		Motion: assets,
		Year:   time.Now().Year(),
	}
	return render(c, status, pages.Landing(vm))
}
