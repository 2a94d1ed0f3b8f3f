package capabilities_usecase

import (
	"context"
	"sync/atomic"
	"time"

	"guidelinex/domain"
	"guidelinex/port/capabilities_port"
	"guidelinex/utils/logger"
	"guidelinex/utils/metrics"
)

type cacheEntry struct {
	capabilities *domain.Capabilities
	fetchedAt    time.Time
}

// CapabilitiesUsecase serves the filter-capabilities snapshot from a
// time-bounded cache. The snapshot is replaced wholesale; concurrent
// refreshes race and the last writer wins, which is safe because the
// underlying queries are read-only and idempotent.
type CapabilitiesUsecase struct {
	capabilitiesPort capabilities_port.CapabilitiesPort
	ttl              time.Duration
	searchMetrics    *metrics.SearchMetrics

	cache atomic.Pointer[cacheEntry]
	now   func() time.Time
}

func NewCapabilitiesUsecase(capabilitiesPort capabilities_port.CapabilitiesPort, ttl time.Duration, searchMetrics *metrics.SearchMetrics) *CapabilitiesUsecase {
	return &CapabilitiesUsecase{
		capabilitiesPort: capabilitiesPort,
		ttl:              ttl,
		searchMetrics:    searchMetrics,
		now:              time.Now,
	}
}

// Execute returns the cached snapshot when it is within the TTL, otherwise
// recomputes it from the store. When a refresh fails but an earlier snapshot
// exists, the stale snapshot is served instead of an error.
func (u *CapabilitiesUsecase) Execute(ctx context.Context) (*domain.Capabilities, error) {
	entry := u.cache.Load()
	if entry != nil && u.now().Sub(entry.fetchedAt) < u.ttl {
		return entry.capabilities, nil
	}

	logger.Logger.Info("refreshing search capabilities cache from database")

	capabilities, err := u.refresh(ctx)
	if err != nil {
		u.recordRefresh("failure")
		if entry != nil {
			logger.Logger.Error("capabilities refresh failed, serving stale snapshot", "error", err)
			return entry.capabilities, nil
		}
		return nil, err
	}

	u.cache.Store(&cacheEntry{capabilities: capabilities, fetchedAt: u.now()})
	u.recordRefresh("success")

	return capabilities, nil
}

func (u *CapabilitiesUsecase) refresh(ctx context.Context) (*domain.Capabilities, error) {
	types, err := u.capabilitiesPort.FetchDistinctValues(ctx, domain.DimensionType)
	if err != nil {
		return nil, err
	}

	regions, err := u.capabilitiesPort.FetchDistinctValues(ctx, domain.DimensionRegion)
	if err != nil {
		return nil, err
	}

	fields, err := u.capabilitiesPort.FetchDistinctValues(ctx, domain.DimensionField)
	if err != nil {
		return nil, err
	}

	yearRange, err := u.capabilitiesPort.FetchYearRange(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Capabilities{
		Types:     types,
		Regions:   regions,
		Fields:    fields,
		YearRange: yearRange,
	}, nil
}

func (u *CapabilitiesUsecase) recordRefresh(result string) {
	if u.searchMetrics != nil {
		u.searchMetrics.CapabilitiesRefresh.WithLabelValues(result).Inc()
	}
}
