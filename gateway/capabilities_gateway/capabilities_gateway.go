package capabilities_gateway

import (
	"context"

	"guidelinex/domain"
	"guidelinex/driver/guidex_db"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CapabilitiesGateway implements capabilities_port.CapabilitiesPort on top of
// the PostgreSQL driver.
type CapabilitiesGateway struct {
	guidexDBRepository *guidex_db.GuidexDBRepository
}

func NewCapabilitiesGateway(pool *pgxpool.Pool) *CapabilitiesGateway {
	return &CapabilitiesGateway{
		guidexDBRepository: guidex_db.NewGuidexDBRepositoryWithPool(pool),
	}
}

func NewCapabilitiesGatewayWithRepository(repo *guidex_db.GuidexDBRepository) *CapabilitiesGateway {
	return &CapabilitiesGateway{guidexDBRepository: repo}
}

func (g *CapabilitiesGateway) FetchDistinctValues(ctx context.Context, dimension string) ([]string, error) {
	if g.guidexDBRepository == nil {
		return nil, g.connectionError("FetchDistinctValues")
	}

	values, err := g.guidexDBRepository.FetchDistinctValues(ctx, dimension)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch distinct values", err, map[string]interface{}{
			"gateway":   "CapabilitiesGateway",
			"dimension": dimension,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_distinct_values")
		return nil, dbErr
	}
	return values, nil
}

func (g *CapabilitiesGateway) FetchYearRange(ctx context.Context) (*domain.YearRange, error) {
	if g.guidexDBRepository == nil {
		return nil, g.connectionError("FetchYearRange")
	}

	yearRange, err := g.guidexDBRepository.FetchYearRange(ctx)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch year range", err, map[string]interface{}{
			"gateway": "CapabilitiesGateway",
		})
		errors.LogError(logger.Logger, dbErr, "fetch_year_range")
		return nil, dbErr
	}
	return yearRange, nil
}

func (g *CapabilitiesGateway) connectionError(method string) error {
	dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
		"gateway": "CapabilitiesGateway",
		"method":  method,
	})
	errors.LogError(logger.Logger, dbErr, "database_connection_check")
	return dbErr
}
