package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guidelinex/config"
	"guidelinex/di"
	"guidelinex/driver/guidex_db"
	"guidelinex/job"
	"guidelinex/rest"
	"guidelinex/utils/logger"
	"guidelinex/utils/otel"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init telemetry: %v\n", err)
		os.Exit(1)
	}

	log := logger.InitLogger(otelCfg.Enabled)
	log.Info("Starting server")

	pool, err := guidex_db.InitDBConnectionPool(ctx)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	// Singleton counters row must exist before any increment fires.
	if err := container.GuidexDBRepository.EnsureStatsRow(ctx); err != nil {
		log.Error("Failed to initialize system stats row", "error", err)
		panic(err)
	}

	scheduler := job.NewScheduler()
	scheduler.Add(job.Job{
		Name:     "rate_window_reset",
		Interval: cfg.RateLimit.ResetWindow,
		Timeout:  5 * time.Second,
		Fn:       container.RateLimiter.Reset,
	})
	scheduler.Add(job.Job{
		Name:     "capabilities_warm",
		Interval: cfg.Cache.CapabilitiesTTL,
		Timeout:  30 * time.Second,
		Fn: func(ctx context.Context) error {
			_, err := container.CapabilitiesUsecase.Execute(ctx)
			return err
		},
	})
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("Error starting server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	scheduler.Shutdown()
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Error("Telemetry shutdown failed", "error", err)
	}
}
