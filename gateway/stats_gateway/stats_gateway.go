package stats_gateway

import (
	"context"

	"guidelinex/domain"
	"guidelinex/driver/guidex_db"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SystemStatsGateway implements stats_port.SystemStatsPort on top of the
// PostgreSQL driver.
type SystemStatsGateway struct {
	guidexDBRepository *guidex_db.GuidexDBRepository
}

func NewSystemStatsGateway(pool *pgxpool.Pool) *SystemStatsGateway {
	return &SystemStatsGateway{
		guidexDBRepository: guidex_db.NewGuidexDBRepositoryWithPool(pool),
	}
}

func NewSystemStatsGatewayWithRepository(repo *guidex_db.GuidexDBRepository) *SystemStatsGateway {
	return &SystemStatsGateway{guidexDBRepository: repo}
}

func (g *SystemStatsGateway) FetchSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	if g.guidexDBRepository == nil {
		return nil, g.connectionError("FetchSystemStats")
	}

	stats, err := g.guidexDBRepository.FetchSystemStats(ctx)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch system stats", err, map[string]interface{}{
			"gateway": "SystemStatsGateway",
		})
		errors.LogError(logger.Logger, dbErr, "fetch_system_stats")
		return nil, dbErr
	}
	return stats, nil
}

func (g *SystemStatsGateway) IncrementVisitCount(ctx context.Context) error {
	if g.guidexDBRepository == nil {
		return g.connectionError("IncrementVisitCount")
	}
	return g.guidexDBRepository.IncrementVisitCount(ctx)
}

func (g *SystemStatsGateway) IncrementSearchCount(ctx context.Context) error {
	if g.guidexDBRepository == nil {
		return g.connectionError("IncrementSearchCount")
	}
	return g.guidexDBRepository.IncrementSearchCount(ctx)
}

func (g *SystemStatsGateway) connectionError(method string) error {
	dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
		"gateway": "SystemStatsGateway",
		"method":  method,
	})
	errors.LogError(logger.Logger, dbErr, "database_connection_check")
	return dbErr
}
