// Package metrics exposes Prometheus collectors for the search pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SearchMetrics holds the collectors recorded on the search request path.
type SearchMetrics struct {
	Requests            *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	RateLimited         prometheus.Counter
	CapabilitiesRefresh *prometheus.CounterVec
}

// NewSearchMetrics registers the search collectors on the given registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	factory := promauto.With(reg)

	return &SearchMetrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guidelinex_search_requests_total",
			Help: "Number of handled search-path requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guidelinex_search_request_duration_seconds",
			Help:    "Latency of search-path requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "guidelinex_rate_limited_total",
			Help: "Number of requests rejected by the fixed-window rate limiter.",
		}),
		CapabilitiesRefresh: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guidelinex_capabilities_refresh_total",
			Help: "Capabilities cache refresh attempts by result.",
		}, []string{"result"}),
	}
}
