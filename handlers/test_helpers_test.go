package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hraktech_web/config"
	"hraktech_web/content"
	"hraktech_web/middleware"
	"hraktech_web/motion"
	"hraktech_web/services"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var escape = templ.EscapeString[string]

type siteOptions struct {
	animated bool
	limiter  *middleware.RateLimiter
}

// setupEcho builds a site backed by engine scripts in a temp directory.
func setupEcho(t *testing.T, opts siteOptions) (*echo.Echo, *Site) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, motion.DefaultEngineKey), []byte("window.gsap={};"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, motion.DefaultExtensionKey), []byte("window.ScrollTrigger={};"), 0o644))

	cfg := &config.Config{
		AppURL:               "https://hraktech.test",
		AnimationsEnabled:    opts.animated,
		MotionAssetDir:       dir,
		ContactDisplayWindow: 4 * time.Second,
		CarouselInterval:     5 * time.Second,
		StaticDir:            t.TempDir(),
	}
	env := motion.ServerEnvironment{Enabled: opts.animated, ReducedMotionVar: "HRAKTECH_TEST_REDUCED_MOTION"}

	site := &Site{
		Config:  cfg,
		Content: content.GetFullConfig(),
		Guard:   motion.NewGuard(env, services.NewMotionLoader(services.NewLocalStorage(dir), "vendor")),
		Contact: services.NewContactService(0, zerolog.Nop()),
		Log:     zerolog.Nop(),
	}

	e := echo.New()
	e.Use(middleware.Locale(false))
	e.Use(middleware.ReducedMotion())
	site.Register(e, opts.limiter)
	return e, site
}

func do(e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, string) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	body, _ := io.ReadAll(rec.Body)
	return rec, string(body)
}

func get(e *echo.Echo, target string, headers ...string) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return do(e, req)
}

func postForm(e *echo.Echo, target string, form url.Values, htmx bool) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return do(e, req)
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"project": {"app-web"},
		"message": {"Bonjour"},
	}
}
