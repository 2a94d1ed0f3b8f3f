package middleware

import (
	"log/slog"
	"strings"
	"time"

	"guidelinex/utils/logger"
	"guidelinex/utils/metrics"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware logs request lifecycles and records Prometheus metrics
// for search-path traffic. Search requests additionally log the query and
// type parameters for clinical usage analysis.
func LoggingMiddleware(baseLogger *slog.Logger, searchMetrics *metrics.SearchMetrics) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// Skip logging for health checks to reduce noise
			if req.URL.Path == "/v1/health" {
				return next(c)
			}
			ctx := req.Context()

			err := next(c)

			duration := time.Since(start)
			res := c.Response()
			status := res.Status

			isSearchPath := strings.HasPrefix(req.URL.Path, searchPathPrefix)
			if isSearchPath && searchMetrics != nil {
				searchMetrics.Requests.WithLabelValues(c.Path(), statusLabel(status)).Inc()
				searchMetrics.RequestDuration.WithLabelValues(c.Path()).Observe(duration.Seconds())
			}

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if isSearchPath {
				logAttrs = append(logAttrs,
					"q", c.QueryParam("q"),
					"types", c.QueryParam("type"),
				)
			}

			if status >= 500 {
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", logAttrs...)
			} else if status >= 400 {
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", logAttrs...)
			} else {
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", logAttrs...)
			}

			if err != nil {
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request error",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
			}

			return err
		}
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
