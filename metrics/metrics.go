// Package metrics exposes the site's Prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every site metric plus the Go runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "contact_submissions_total", Help: "Contact form submissions by outcome."},
		[]string{"outcome"},
	)
	MotionEngineLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "motion_engine_loads_total", Help: "Animation engine load attempts by result."},
		[]string{"result"},
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "rate_limit_exceeded_total", Help: "Requests rejected by a rate limiter."},
		[]string{"limiter"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequests, HTTPLatency, ContactSubmissions, MotionEngineLoads, RateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveMotionLoad records one engine load attempt. It matches the motion
// guard's load observer signature.
func ObserveMotionLoad(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	MotionEngineLoads.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency per route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			HTTPLatency.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
			HTTPRequests.WithLabelValues(path, method, strconv.Itoa(c.Response().Status)).Inc()
			return nil
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
