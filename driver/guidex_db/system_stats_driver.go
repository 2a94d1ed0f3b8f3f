package guidex_db

import (
	"context"
	"errors"

	"guidelinex/domain"
	"guidelinex/utils/logger"

	"github.com/jackc/pgx/v5"
)

const statsRowID = 1

// EnsureStatsRow creates the singleton counters row if it does not exist.
// Called once at startup, not on the request path.
func (r *GuidexDBRepository) EnsureStatsRow(ctx context.Context) error {
	query := `
		INSERT INTO system_stats (id, visit_count, search_count)
		VALUES ($1, 0, 0)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, statsRowID); err != nil {
		logger.Logger.Error("error ensuring system stats row", "error", err)
		return err
	}
	return nil
}

// FetchSystemStats returns the singleton counters row. A missing row yields
// zeroed counters rather than an error.
func (r *GuidexDBRepository) FetchSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	query := `SELECT id, visit_count, search_count FROM system_stats WHERE id = $1`

	var stats domain.SystemStats
	err := r.pool.QueryRow(ctx, query, statsRowID).Scan(&stats.ID, &stats.VisitCount, &stats.SearchCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.SystemStats{ID: statsRowID}, nil
	}
	if err != nil {
		logger.Logger.Error("error fetching system stats", "error", err)
		return nil, err
	}
	return &stats, nil
}

// IncrementVisitCount bumps the global visit tally.
func (r *GuidexDBRepository) IncrementVisitCount(ctx context.Context) error {
	query := `UPDATE system_stats SET visit_count = visit_count + 1 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, statsRowID); err != nil {
		return err
	}
	return nil
}

// IncrementSearchCount bumps the global search tally.
func (r *GuidexDBRepository) IncrementSearchCount(ctx context.Context) error {
	query := `UPDATE system_stats SET search_count = search_count + 1 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, statsRowID); err != nil {
		return err
	}
	return nil
}
