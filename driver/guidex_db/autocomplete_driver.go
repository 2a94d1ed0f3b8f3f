package guidex_db

import (
	"context"

	"guidelinex/domain"
	"guidelinex/utils/logger"
)

// Suggestions must both match the prefix expression and contain the typed
// text as a substring of the title, ranked by full-text relevance.
const autocompleteQuery = `
	SELECT title, slug FROM (
		SELECT DISTINCT title, slug,
		       ts_rank(search_vector, to_tsquery('english', $1::text)) AS rank
		FROM documents
		WHERE search_vector @@ to_tsquery('english', $1::text)
		  AND title ILIKE '%' || $2::text || '%'
		ORDER BY rank DESC
		LIMIT 5
	) ranked_titles
`

// FetchAutocompleteSuggestions returns up to five title/slug suggestions for
// a sanitized partial query.
func (r *GuidexDBRepository) FetchAutocompleteSuggestions(ctx context.Context, prefixQuery, substring string) ([]domain.Suggestion, error) {
	rows, err := r.pool.Query(ctx, autocompleteQuery, prefixQuery, substring)
	if err != nil {
		logger.Logger.Error("error fetching autocomplete suggestions", "error", err, "substring", substring)
		return nil, err
	}
	defer rows.Close()

	var suggestions []domain.Suggestion
	for rows.Next() {
		var title, slug *string
		if err := rows.Scan(&title, &slug); err != nil {
			return nil, err
		}
		suggestion := domain.Suggestion{}
		if title != nil {
			suggestion.Title = *title
		}
		if slug != nil {
			suggestion.Slug = *slug
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions, rows.Err()
}
