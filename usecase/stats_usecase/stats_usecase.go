package stats_usecase

import (
	"context"

	"guidelinex/domain"
	"guidelinex/port/stats_port"
	"guidelinex/utils/logger"
)

// SystemStatsUsecase centralizes platform analytics tracking. Counter
// increments are fire-and-forget: failures are logged and dropped.
type SystemStatsUsecase struct {
	statsPort stats_port.SystemStatsPort
}

func NewSystemStatsUsecase(statsPort stats_port.SystemStatsPort) *SystemStatsUsecase {
	return &SystemStatsUsecase{statsPort: statsPort}
}

func (u *SystemStatsUsecase) GetStats(ctx context.Context) (*domain.SystemStats, error) {
	return u.statsPort.FetchSystemStats(ctx)
}

func (u *SystemStatsUsecase) RecordVisit(ctx context.Context) {
	if err := u.statsPort.IncrementVisitCount(ctx); err != nil {
		logger.Logger.Error("failed to record visit", "error", err)
		return
	}
	logger.Logger.Debug("visit recorded")
}

func (u *SystemStatsUsecase) RecordSearch(ctx context.Context) {
	if err := u.statsPort.IncrementSearchCount(ctx); err != nil {
		logger.Logger.Error("failed to record search", "error", err)
		return
	}
	logger.Logger.Debug("search recorded")
}
