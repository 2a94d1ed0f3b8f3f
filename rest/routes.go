package rest

import (
	"net/http"

	"guidelinex/config"
	"guidelinex/di"
	middleware_custom "guidelinex/middleware"
	"guidelinex/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// RegisterRoutes wires middleware and endpoints. The rate limiter sits in
// front of everything else on the search path so rejected requests never
// reach the pipeline.
func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware("guidelinex"))
	e.Use(middleware_custom.SearchRateLimitMiddleware(container.RateLimiter, container.SearchMetrics))
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger, container.SearchMetrics))

	e.GET("/v1/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		container.MetricsRegistry,
		promhttp.HandlerOpts{Registry: container.MetricsRegistry},
	)))

	registerSearchRoutes(e, container, cfg)
	registerStatsRoutes(e, container)
}
