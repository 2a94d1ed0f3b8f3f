package autocomplete_gateway

import (
	"context"

	"guidelinex/domain"
	"guidelinex/driver/guidex_db"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AutocompleteGateway implements autocomplete_port.AutocompletePort on top of
// the PostgreSQL driver.
type AutocompleteGateway struct {
	guidexDBRepository *guidex_db.GuidexDBRepository
}

func NewAutocompleteGateway(pool *pgxpool.Pool) *AutocompleteGateway {
	return &AutocompleteGateway{
		guidexDBRepository: guidex_db.NewGuidexDBRepositoryWithPool(pool),
	}
}

func NewAutocompleteGatewayWithRepository(repo *guidex_db.GuidexDBRepository) *AutocompleteGateway {
	return &AutocompleteGateway{guidexDBRepository: repo}
}

func (g *AutocompleteGateway) FetchSuggestions(ctx context.Context, prefixQuery, substring string) ([]domain.Suggestion, error) {
	if g.guidexDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "AutocompleteGateway",
			"method":  "FetchSuggestions",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	suggestions, err := g.guidexDBRepository.FetchAutocompleteSuggestions(ctx, prefixQuery, substring)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch autocomplete suggestions", err, map[string]interface{}{
			"gateway":   "AutocompleteGateway",
			"substring": substring,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_autocomplete_suggestions")
		return nil, dbErr
	}
	return suggestions, nil
}
