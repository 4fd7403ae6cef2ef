package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hraktech_web/config"
	"hraktech_web/content"
	"hraktech_web/handlers"
	"hraktech_web/logging"
	"hraktech_web/metrics"
	"hraktech_web/middleware"
	"hraktech_web/motion"
	"hraktech_web/services"
	"hraktech_web/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Configure(logging.Config{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})
	log := logging.WithComponent("server")

	site := content.MustLoad()
	if err := i18n.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load translations")
	}
	middleware.InitAssetVersions(cfg.StaticDir, logging.WithComponent("assets"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Animation engine: loaded once, shared by every request
	store := services.NewStorage(ctx, cfg, logging.WithComponent("storage"))
	guard := motion.NewGuard(
		motion.ServerEnvironment{Enabled: cfg.AnimationsEnabled},
		services.NewMotionLoader(store, cfg.MotionAssetPrefix),
		motion.WithLogger(logging.WithComponent("motion")),
		motion.WithLoadObserver(metrics.ObserveMotionLoad),
	)
	go guard.Acquire(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(logging.WithComponent("http")))
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/metrics" },
	}))
	e.Use(middleware.CSPNonce(log))
	e.Use(middleware.Locale(cfg.IsProduction()))
	e.Use(middleware.ReducedMotion())
	e.Use(middleware.CSRF(cfg.IsProduction()))

	h := &handlers.Site{
		Config:  cfg,
		Content: site,
		Guard:   guard,
		Contact: services.NewContactService(cfg.ContactSubmitDelay, logging.WithComponent("contact")),
		Log:     logging.WithComponent("handlers"),
	}
	h.Register(e, middleware.ContactFormRateLimiter(cfg.ContactRateLimit, cfg.ContactRateBurst))

	// Start server
	go func() {
		log.Info().Str("port", cfg.ServerPort).Str("env", cfg.Environment).Msg("Server starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
