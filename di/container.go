package di

import (
	"guidelinex/config"
	"guidelinex/driver/guidex_db"
	"guidelinex/gateway/autocomplete_gateway"
	"guidelinex/gateway/capabilities_gateway"
	"guidelinex/gateway/search_gateway"
	"guidelinex/gateway/stats_gateway"
	"guidelinex/middleware"
	"guidelinex/usecase/autocomplete_usecase"
	"guidelinex/usecase/capabilities_usecase"
	"guidelinex/usecase/search_usecase"
	"guidelinex/usecase/stats_usecase"
	"guidelinex/utils/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ApplicationComponents wires the driver, gateway, and usecase layers plus
// the process-wide shared state (rate limiter, metrics registry).
type ApplicationComponents struct {
	SearchDocumentsUsecase *search_usecase.SearchDocumentsUsecase
	CapabilitiesUsecase    *capabilities_usecase.CapabilitiesUsecase
	AutocompleteUsecase    *autocomplete_usecase.AutocompleteUsecase
	SystemStatsUsecase     *stats_usecase.SystemStatsUsecase
	GuidexDBRepository     *guidex_db.GuidexDBRepository

	RateLimiter     *middleware.FixedWindowLimiter
	SearchMetrics   *metrics.SearchMetrics
	MetricsRegistry *prometheus.Registry
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	searchMetrics := metrics.NewSearchMetrics(registry)

	searchGatewayImpl := search_gateway.NewSearchDocumentsGateway(pool)
	capabilitiesGatewayImpl := capabilities_gateway.NewCapabilitiesGateway(pool)
	autocompleteGatewayImpl := autocomplete_gateway.NewAutocompleteGateway(pool)
	statsGatewayImpl := stats_gateway.NewSystemStatsGateway(pool)

	searchDocumentsUsecase := search_usecase.NewSearchDocumentsUsecase(searchGatewayImpl, statsGatewayImpl, cfg.Search.MaxPageSize)
	capabilitiesUsecase := capabilities_usecase.NewCapabilitiesUsecase(capabilitiesGatewayImpl, cfg.Cache.CapabilitiesTTL, searchMetrics)
	autocompleteUsecase := autocomplete_usecase.NewAutocompleteUsecase(autocompleteGatewayImpl)
	systemStatsUsecase := stats_usecase.NewSystemStatsUsecase(statsGatewayImpl)

	guidexDBRepository := guidex_db.NewGuidexDBRepositoryWithPool(pool)

	return &ApplicationComponents{
		SearchDocumentsUsecase: searchDocumentsUsecase,
		CapabilitiesUsecase:    capabilitiesUsecase,
		AutocompleteUsecase:    autocompleteUsecase,
		SystemStatsUsecase:     systemStatsUsecase,
		GuidexDBRepository:     guidexDBRepository,

		RateLimiter:     middleware.NewFixedWindowLimiter(cfg.RateLimit.Threshold),
		SearchMetrics:   searchMetrics,
		MetricsRegistry: registry,
	}
}
