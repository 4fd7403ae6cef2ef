package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness and whether the animation engine is loaded. It
// never triggers a load.
func (s *Site) Health(c echo.Context) error {
	status := "disabled"
	if s.Config.AnimationsEnabled {
		status = "pending"
		if h := s.Guard.Cached(); h != nil {
			status = "loaded"
		}
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"motion": status,
	})
}
