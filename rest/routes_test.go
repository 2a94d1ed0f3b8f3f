package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"guidelinex/config"
	"guidelinex/di"
	"guidelinex/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger.InitLogger(false)

	cfg := &config.Config{}
	cfg.RateLimit.Threshold = 50
	cfg.Search.DefaultPageSize = 20
	cfg.Search.MaxPageSize = 50

	// nil pool: endpoints that need the store answer 500, the rest still work
	container := di.NewApplicationComponents(nil, cfg)

	e := echo.New()
	RegisterRoutes(e, container, cfg)
	return e
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSearchWithoutDatabase(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=heart", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATABASE_ERROR")
}

func TestRequestIDHeaderOnResponses(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
