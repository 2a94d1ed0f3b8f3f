package guidex_db

import (
	"context"
	"fmt"

	"guidelinex/domain"
	"guidelinex/utils/logger"
)

// Columns reachable through FetchDistinctValues. The list is fixed so the
// dimension name can never reach the SQL text unchecked.
var dimensionColumns = map[string]string{
	domain.DimensionType:   "type",
	domain.DimensionRegion: "region",
	domain.DimensionField:  "field",
}

// FetchDistinctValues returns the sorted distinct non-null values of a
// filterable catalog dimension.
func (r *GuidexDBRepository) FetchDistinctValues(ctx context.Context, dimension string) ([]string, error) {
	column, ok := dimensionColumns[dimension]
	if !ok {
		return nil, fmt.Errorf("unknown catalog dimension: %s", dimension)
	}

	query := fmt.Sprintf("SELECT DISTINCT %s FROM documents WHERE %s IS NOT NULL ORDER BY %s", column, column, column)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.Error("error fetching distinct values", "error", err, "dimension", dimension)
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

// FetchYearRange returns the min and max publication year of the catalog,
// or nil when no document carries a year.
func (r *GuidexDBRepository) FetchYearRange(ctx context.Context) (*domain.YearRange, error) {
	query := `SELECT MIN(year), MAX(year) FROM documents`

	var minYear, maxYear *int
	if err := r.pool.QueryRow(ctx, query).Scan(&minYear, &maxYear); err != nil {
		logger.Logger.Error("error fetching year range", "error", err)
		return nil, err
	}

	if minYear == nil || maxYear == nil {
		return nil, nil
	}

	return &domain.YearRange{Min: *minYear, Max: *maxYear}, nil
}
