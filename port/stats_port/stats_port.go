package stats_port

import (
	"context"

	"guidelinex/domain"
)

// SystemStatsPort is the fire-and-forget counters collaborator. Increment
// failures are reported to callers, who are expected to log and drop them.
type SystemStatsPort interface {
	FetchSystemStats(ctx context.Context) (*domain.SystemStats, error)
	IncrementVisitCount(ctx context.Context) error
	IncrementSearchCount(ctx context.Context) error
}
