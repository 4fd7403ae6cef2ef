// Package pages assembles full documents from the section components.
package pages

import (
	"context"

	"hraktech_web/content"
	"hraktech_web/middleware"
	"hraktech_web/models"
	"hraktech_web/templates/components"
	"hraktech_web/ui"

	"github.com/a-h/templ"
)

// LandingViewModel holds everything the landing page renders.
type LandingViewModel struct {
	Config   *content.WebsiteConfig
	SEO      *models.SEO
	Navbar   *ui.Navbar
	Carousel components.CarouselView
	Form     components.FormView
	Motion   MotionAssets
	Year     int
}

// MotionAssets is the animation plan of one request and the version of the
// engine bundle that replays it. A zero value renders a static page.
type MotionAssets struct {
	Plan          []byte
	BundleVersion string
}

// Enabled reports whether the page should load the engine.
func (m MotionAssets) Enabled() bool {
	return len(m.Plan) > 0 && m.BundleVersion != ""
}

// Landing renders the single page site.
func Landing(vm LandingViewModel) templ.Component {
	cfg := vm.Config
	theme := cfg.Theme
	style := "--primary:" + theme.Colors.Primary +
		";--primary-light:" + theme.Colors.PrimaryLight +
		";--primary-dark:" + theme.Colors.PrimaryDark +
		";--secondary:" + theme.Colors.Secondary +
		";--accent:" + theme.Colors.Accent +
		";--gradient-primary:" + theme.Gradients.Primary

	bodyClass := "static"
	if vm.Motion.Enabled() {
		bodyClass = "animated"
	}

	return components.Group(
		components.Trusted("<!DOCTYPE html>"),
		components.El("html", []components.Attr{components.A("lang", vm.SEO.Lang)},
			components.Head(vm.SEO),
			components.El("body", []components.Attr{components.A("class", bodyClass), components.A("style", style)},
				components.Navbar(vm.Navbar, cfg.Company),
				components.El("main", []components.Attr{components.A("id", "main")},
					components.Hero(cfg.Hero, cfg.Company),
					components.Services(cfg.Services),
					components.Technologies(cfg.Technologies),
					components.Projects(cfg.Projects),
					components.Testimonials(cfg.Testimonials, vm.Carousel),
					components.Contact(cfg.Contact, cfg.Company, vm.Form),
				),
				components.Footer(cfg.Footer, cfg.Company, vm.Year),
				Scripts(vm.Motion),
			),
		),
	)
}

// Scripts renders the client bootstrap. The animation plan and engine are
// only sent when the request is animated.
func Scripts(m MotionAssets) templ.Component {
	return components.Func(func(ctx context.Context) templ.Component {
		nonce := middleware.GetNonce(ctx)
		var motionScripts templ.Component
		if m.Enabled() {
			motionScripts = components.Group(
				components.El("script", []components.Attr{components.A("type", "application/json"), components.A("id", "motion-plan"), components.A("nonce", nonce)}, components.Trusted(string(m.Plan))),
				components.El("script", []components.Attr{components.A("src", "/motion/bundle.js?v="+m.BundleVersion), components.A("nonce", nonce), components.B("defer")}),
			)
		}
		return components.Group(
			motionScripts,
			components.El("script", []components.Attr{components.A("src", middleware.AssetURL(ctx, "js/motion.js")), components.A("nonce", nonce), components.B("defer")}),
		)
	})
}
