// Package middleware provides HTTP middleware for the GuidelineX backend:
// rate limiting, request logging, and request ID propagation for the Echo
// web framework.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"guidelinex/utils/logger"
	"guidelinex/utils/metrics"

	"github.com/labstack/echo/v4"
)

// FixedWindowLimiter counts requests per client identity inside a global
// fixed window. Reset clears every identity at once; bursts straddling a
// window boundary are accepted, which is the documented coarseness of this
// scheme rather than a bug.
type FixedWindowLimiter struct {
	counts    sync.Map // client identity -> *atomic.Int64
	threshold int64
}

func NewFixedWindowLimiter(threshold int) *FixedWindowLimiter {
	return &FixedWindowLimiter{threshold: int64(threshold)}
}

// Allow increments the identity's counter and reports whether the request
// is within the window's budget.
func (l *FixedWindowLimiter) Allow(identity string) bool {
	counter, _ := l.counts.LoadOrStore(identity, &atomic.Int64{})
	return counter.(*atomic.Int64).Add(1) <= l.threshold
}

// Count returns the identity's current window count.
func (l *FixedWindowLimiter) Count(identity string) int64 {
	if counter, ok := l.counts.Load(identity); ok {
		return counter.(*atomic.Int64).Load()
	}
	return 0
}

// Reset discards all identity counters. The signature matches the job
// scheduler so the reset can run on its fixed cadence.
func (l *FixedWindowLimiter) Reset(ctx context.Context) error {
	l.counts.Range(func(key, _ any) bool {
		l.counts.Delete(key)
		return true
	})
	return nil
}

// searchPathPrefix scopes the gate: only search traffic is rate limited,
// everything else bypasses the limiter entirely.
const searchPathPrefix = "/search"

// SearchRateLimitMiddleware gates /search traffic through the fixed-window
// limiter, rejecting over-budget clients with a plain-text 429 before any
// pipeline work happens.
func SearchRateLimitMiddleware(limiter *FixedWindowLimiter, searchMetrics *metrics.SearchMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, searchPathPrefix) {
				return next(c)
			}

			clientIP := c.RealIP()
			if clientIP == "" {
				clientIP = "unknown"
			}

			if !limiter.Allow(clientIP) {
				logger.Logger.Warn("rate limit exceeded",
					"ip", clientIP,
					"count", limiter.Count(clientIP),
					"path", c.Request().URL.Path,
				)
				if searchMetrics != nil {
					searchMetrics.RateLimited.Inc()
				}
				return c.String(http.StatusTooManyRequests, "Too Many Requests - Rate limit exceeded")
			}

			return next(c)
		}
	}
}
