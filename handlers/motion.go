package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MotionBundle serves the animation engine, its scroll extension and the
// plugin registration as one script. Versioned requests are cached forever.
func (s *Site) MotionBundle(c echo.Context) error {
	handle := s.Guard.Acquire(c.Request().Context())
	if !handle.Animated() {
		return echo.NewHTTPError(http.StatusNotFound, "animations unavailable")
	}

	version := handle.Version()
	h := c.Response().Header()
	h.Set("ETag", `"`+version+`"`)
	if c.QueryParam("v") == version {
		h.Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		h.Set("Cache-Control", "no-cache")
	}
	if c.Request().Header.Get("If-None-Match") == `"`+version+`"` {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", handle.Bundle())
}
