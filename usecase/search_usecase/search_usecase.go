package search_usecase

import (
	"context"

	"guidelinex/domain"
	"guidelinex/port/search_port"
	"guidelinex/port/stats_port"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"
)

// SearchDocumentsUsecase orchestrates one catalog search: input
// normalization, the ranked store request, tier derivation, and the
// fire-and-forget search counter.
type SearchDocumentsUsecase struct {
	searchPort  search_port.SearchDocumentsPort
	statsPort   stats_port.SystemStatsPort
	maxPageSize int
}

func NewSearchDocumentsUsecase(searchPort search_port.SearchDocumentsPort, statsPort stats_port.SystemStatsPort, maxPageSize int) *SearchDocumentsUsecase {
	return &SearchDocumentsUsecase{
		searchPort:  searchPort,
		statsPort:   statsPort,
		maxPageSize: maxPageSize,
	}
}

func (u *SearchDocumentsUsecase) Execute(ctx context.Context, query domain.SearchQuery) (*domain.SearchPage, error) {
	if query.Page < 0 {
		return nil, errors.ValidationError("page must not be negative", map[string]interface{}{
			"page": query.Page,
		})
	}
	if query.Size <= 0 {
		return nil, errors.ValidationError("size must be positive", map[string]interface{}{
			"size": query.Size,
		})
	}

	// Hard cap regardless of client input.
	size := query.Size
	if size > u.maxPageSize {
		size = u.maxPageSize
	}
	offset := query.Page * size

	normalized := domain.NormalizeQuery(query.Query)
	hasSlug := query.Slug != ""

	logger.Logger.Info("performing search",
		"query", normalized.Canonical,
		"prefix_query", normalized.Prefix,
		"slug", query.Slug,
		"types", query.Types,
		"region", query.Region,
		"field", query.Field,
		"page", query.Page,
		"size", size,
	)

	// Nothing to match on: answer without touching the store.
	if !normalized.HasQuery() && !hasSlug && !query.HasFilters() {
		logger.Logger.Debug("aborting search: no query, no filters, and no slug provided")
		return &domain.SearchPage{
			Results: []domain.RankedResult{},
			Total:   0,
			Limit:   size,
			Offset:  offset,
		}, nil
	}

	results, total, err := u.searchPort.SearchDocuments(ctx, search_port.SearchRequest{
		Query:       normalized.Original,
		PrefixQuery: normalized.Prefix,
		Slug:        query.Slug,
		Types:       query.Types,
		Region:      query.Region,
		Field:       query.Field,
		YearFrom:    query.YearFrom,
		YearTo:      query.YearTo,
		Limit:       size,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}

	hasQuery := normalized.HasQuery()
	for i := range results {
		results[i].Tier = domain.TierForScore(results[i].Score, hasQuery || hasSlug)
	}
	if results == nil {
		results = []domain.RankedResult{}
	}

	logger.Logger.Info("search completed",
		"total", total,
		"page_results", len(results),
		"query", normalized.Canonical,
		"slug", query.Slug,
	)

	// Telemetry must never fail the request; run detached from the
	// request context and swallow errors after logging.
	go func() {
		if err := u.statsPort.IncrementSearchCount(context.Background()); err != nil {
			logger.Logger.Error("failed to record search", "error", err)
		}
	}()

	return &domain.SearchPage{
		Results: results,
		Total:   total,
		Limit:   size,
		Offset:  offset,
	}, nil
}
