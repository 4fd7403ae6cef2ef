package handlers

import (
	"hraktech_web/config"
	"hraktech_web/content"
	"hraktech_web/metrics"
	"hraktech_web/middleware"
	"hraktech_web/motion"
	"hraktech_web/services"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Site holds the dependencies shared by the page handlers.
type Site struct {
	Config  *config.Config
	Content *content.WebsiteConfig
	Guard   *motion.Guard
	Contact *services.ContactService
	Log     zerolog.Logger
}

// Register mounts every route on e. contactLimiter may be nil.
func (s *Site) Register(e *echo.Echo, contactLimiter *middleware.RateLimiter) {
	e.GET("/", s.Landing)

	contact := []echo.MiddlewareFunc{}
	if contactLimiter != nil {
		contact = append(contact, contactLimiter.Middleware())
	}
	e.POST("/contact", s.SubmitContact, contact...)

	htmx := e.Group("/htmx")
	htmx.GET("/contact/form", s.ContactFormHTMX)
	htmx.GET("/testimonials", s.TestimonialsHTMX)

	e.GET("/motion/bundle.js", s.MotionBundle)
	e.GET("/sitemap.xml", s.Sitemap)
	e.GET("/robots.txt", s.Robots)
	e.GET("/healthz", s.Health)
	e.GET("/metrics", metrics.Handler())
	e.Static("/static", s.Config.StaticDir)
}

// render writes a component with the given status.
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// motionHandle returns the animation handle for this request, or nil when
// the request asked for reduced motion or the engine is unavailable.
func (s *Site) motionHandle(c echo.Context) *motion.Handle {
	ctx := c.Request().Context()
	if middleware.PrefersReducedMotion(ctx) {
		return nil
	}
	return s.Guard.Acquire(ctx)
}
