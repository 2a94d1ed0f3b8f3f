package search_gateway

import (
	"context"
	stderrors "errors"

	"guidelinex/domain"
	"guidelinex/driver/guidex_db"
	"guidelinex/port/search_port"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SearchDocumentsGateway implements search_port.SearchDocumentsPort on top of
// the PostgreSQL driver, translating driver failures into the application
// error taxonomy.
type SearchDocumentsGateway struct {
	guidexDBRepository *guidex_db.GuidexDBRepository
}

func NewSearchDocumentsGateway(pool *pgxpool.Pool) *SearchDocumentsGateway {
	return &SearchDocumentsGateway{
		guidexDBRepository: guidex_db.NewGuidexDBRepositoryWithPool(pool),
	}
}

func NewSearchDocumentsGatewayWithRepository(repo *guidex_db.GuidexDBRepository) *SearchDocumentsGateway {
	return &SearchDocumentsGateway{guidexDBRepository: repo}
}

func (g *SearchDocumentsGateway) SearchDocuments(ctx context.Context, req search_port.SearchRequest) ([]domain.RankedResult, int64, error) {
	if g.guidexDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "SearchDocumentsGateway",
			"method":  "SearchDocuments",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, 0, dbErr
	}

	results, total, err := g.guidexDBRepository.SearchDocuments(ctx, guidex_db.SearchDocumentsParams{
		Query:       req.Query,
		PrefixQuery: req.PrefixQuery,
		Slug:        req.Slug,
		Types:       req.Types,
		Region:      req.Region,
		Field:       req.Field,
		YearFrom:    req.YearFrom,
		YearTo:      req.YearTo,
		Limit:       req.Limit,
		Offset:      req.Offset,
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrRowMapping) {
			mapErr := errors.MappingError("failed to map search result row", err, map[string]interface{}{
				"gateway": "SearchDocumentsGateway",
				"query":   req.Query,
				"slug":    req.Slug,
			})
			errors.LogError(logger.Logger, mapErr, "map_search_results")
			return nil, 0, mapErr
		}

		dbErr := errors.DatabaseError("failed to search documents", err, map[string]interface{}{
			"gateway": "SearchDocumentsGateway",
			"query":   req.Query,
			"slug":    req.Slug,
		})
		errors.LogError(logger.Logger, dbErr, "search_documents")
		return nil, 0, dbErr
	}

	return results, total, nil
}
