package middleware

import (
	"net/http"
	"sync"
	"time"

	"hraktech_web/metrics"
	"hraktech_web/services/i18n"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines a per-client token bucket.
type RateLimitConfig struct {
	// Name labels the limiter in metrics
	Name string
	// Rate is the sustained number of requests per second
	Rate rate.Limit
	// Burst is the bucket size
	Burst int
	// KeyFunc returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// MessageKey is the i18n key of the message returned when the limit is exceeded
	MessageKey string
	// IdleTimeout drops buckets not used for this long
	IdleTimeout time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client.
type RateLimiter struct {
	config RateLimitConfig
	now    func() time.Time

	mu          sync.Mutex
	buckets     map[string]*bucket
	lastCleanup time.Time
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.MessageKey == "" {
		config.MessageKey = "contact.errors.rate_limited"
	}
	if config.Name == "" {
		config.Name = "default"
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = 10 * time.Minute
	}
	return &RateLimiter{
		config:      config,
		now:         time.Now,
		buckets:     make(map[string]*bucket),
		lastCleanup: time.Now(),
	}
}

// ContactFormRateLimiter limits contact submissions per client.
func ContactFormRateLimiter(perSecond float64, burst int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Name:  "contact",
		Rate:  rate.Limit(perSecond),
		Burst: burst,
	})
}

// Allow consumes one token for key.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	rl.cleanupLocked(now)
	return allowed
}

// cleanupLocked drops idle buckets once per idle timeout.
func (rl *RateLimiter) cleanupLocked(now time.Time) {
	if now.Sub(rl.lastCleanup) < rl.config.IdleTimeout {
		return
	}
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) >= rl.config.IdleTimeout {
			delete(rl.buckets, key)
		}
	}
	rl.lastCleanup = now
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.Allow(rl.config.KeyFunc(c)) {
				return next(c)
			}

			metrics.RateLimited.WithLabelValues(rl.config.Name).Inc()
			message := i18n.T(c.Request().Context(), rl.config.MessageKey)
			if c.Request().Header.Get("HX-Request") == "true" {
				// Swap the error into the form instead of replacing it
				c.Response().Header().Set("HX-Retarget", "#contact-form-errors")
				c.Response().Header().Set("HX-Reswap", "innerHTML")
				return c.HTML(http.StatusTooManyRequests, `<p class="form-error" role="alert">`+templ.EscapeString(message)+`</p>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, message)
		}
	}
}
