package autocomplete_port

import (
	"context"

	"guidelinex/domain"
)

// AutocompletePort resolves title/slug suggestions for a partial query.
type AutocompletePort interface {
	FetchSuggestions(ctx context.Context, prefixQuery, substring string) ([]domain.Suggestion, error)
}
