package handlers

import (
	"net/http"

	"hraktech_web/motion"
	"hraktech_web/templates/components"
	"hraktech_web/ui"

	"github.com/labstack/echo/v4"
)

// TestimonialsHTMX applies one carousel operation to the state sent by the
// client and returns the updated carousel fragment.
func (s *Site) TestimonialsHTMX(c echo.Context) error {
	var (
		index    int
		op       string
		autoplay bool
	)
	if err := echo.QueryParamsBinder(c).
		Int("index", &index).
		String("op", &op).
		Bool("autoplay", &autoplay).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid carousel state")
	}

	items := s.Content.Testimonials.Items
	if index < 0 || (len(items) > 0 && index >= len(items)) {
		return echo.NewHTTPError(http.StatusBadRequest, "testimonial index out of range")
	}

	scope := motion.NewScope(nil)
	defer scope.Revoke()

	carousel := ui.RestoreCarousel(len(items), index, autoplay)
	carousel.Mount(scope, s.Config.CarouselInterval)
	switch op {
	case "", "show":
	case "goto":
		carousel.GoTo(index)
	default:
		if scope.Dispatch(ui.CarouselTarget, op) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown carousel operation")
		}
	}

	return render(c, http.StatusOK, components.TestimonialCarousel(items, components.CarouselView{
		Index:    carousel.Index(),
		Autoplay: carousel.Autoplay(),
		Interval: s.Config.CarouselInterval,
	}))
}
