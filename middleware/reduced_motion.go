package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

// ReducedMotionHint is the client hint carrying the user's motion preference.
const ReducedMotionHint = "Sec-CH-Prefers-Reduced-Motion"

const reducedMotionKey contextKey = "reduced_motion"

// ReducedMotion asks browsers for the motion preference hint and records it
// in the request context. A request that reports "reduce" gets no animation
// plan even when the engine is loaded.
func ReducedMotion() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Add("Accept-CH", ReducedMotionHint)
			h.Add("Vary", ReducedMotionHint)

			if strings.EqualFold(strings.TrimSpace(c.Request().Header.Get(ReducedMotionHint)), "reduce") {
				ctx := context.WithValue(c.Request().Context(), reducedMotionKey, true)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// PrefersReducedMotion reports whether the request asked for reduced motion.
func PrefersReducedMotion(ctx context.Context) bool {
	v, _ := ctx.Value(reducedMotionKey).(bool)
	return v
}
