package autocomplete_usecase

import (
	"context"
	"strings"

	"guidelinex/domain"
	"guidelinex/port/autocomplete_port"
	"guidelinex/utils/logger"
)

const minQueryLength = 3

// AutocompleteUsecase resolves title/slug suggestions for search assistance.
// It never returns an error: any store failure degrades to an empty list so
// autocomplete can never break the search page.
type AutocompleteUsecase struct {
	autocompletePort autocomplete_port.AutocompletePort
}

func NewAutocompleteUsecase(autocompletePort autocomplete_port.AutocompletePort) *AutocompleteUsecase {
	return &AutocompleteUsecase{autocompletePort: autocompletePort}
}

func (u *AutocompleteUsecase) Execute(ctx context.Context, query string) []domain.Suggestion {
	if len(strings.TrimSpace(query)) < minQueryLength {
		return []domain.Suggestion{}
	}

	normalized := domain.NormalizeQuery(query)
	if !normalized.HasQuery() {
		return []domain.Suggestion{}
	}

	logger.Logger.Info("fetching autocomplete suggestions", "query", normalized.Canonical)

	rows, err := u.autocompletePort.FetchSuggestions(ctx, normalized.Prefix, normalized.Canonical)
	if err != nil {
		logger.Logger.Error("failed to fetch autocomplete suggestions",
			"error", err,
			"query", normalized.Canonical,
		)
		return []domain.Suggestion{}
	}

	suggestions := make([]domain.Suggestion, 0, len(rows))
	for _, row := range rows {
		if row.Title == "" {
			continue
		}
		suggestions = append(suggestions, row)
	}
	return suggestions
}
