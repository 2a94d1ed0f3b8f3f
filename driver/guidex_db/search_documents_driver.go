package guidex_db

import (
	"context"
	"fmt"

	"guidelinex/domain"
	errs "guidelinex/utils/errors"
	"guidelinex/utils/logger"
)

// searchDocumentsQuery composes the full ranking policy in one statement.
// Score tiers, highest priority first: exact slug match (1000), exact
// case-insensitive title match (100), pure filter mode (0), then weighted
// full-text relevance where the websearch parse of the original text counts
// double against the prefix expression. Rows with any active query text sort
// before filter-only matches, then by score, then by year.
const searchDocumentsQuery = `
	SELECT
		id,
		type,
		region,
		field,
		title,
		year,
		link,
		authors,
		source,
		citation,
		keywords,
		CASE
			WHEN $3::text IS NOT NULL AND slug = $3::text THEN 1000.0
			WHEN lower(title) = lower($1::text) THEN 100.0
			WHEN ($1::text IS NULL OR $1::text = '') THEN 0
			ELSE (
				COALESCE(ts_rank(search_vector, websearch_to_tsquery('english', $1::text)), 0) * 2 +
				COALESCE(ts_rank(search_vector, to_tsquery('english', $2::text)), 0)
			)
		END AS score
	FROM documents
	WHERE
		(
			($3::text IS NOT NULL AND slug = $3::text)
			OR
			(
				$1::text IS NULL OR $1::text = ''
				OR lower(title) = lower($1::text)
				OR search_vector @@ websearch_to_tsquery('english', $1::text)
				OR search_vector @@ to_tsquery('english', $2::text)
			)
		)
		AND ($4::text[] IS NULL OR type = ANY($4::text[]))
		AND ($5::text IS NULL OR region = $5::text)
		AND ($6::text IS NULL OR field = $6::text)
		AND ($7::integer IS NULL OR year >= $7::integer)
		AND ($8::integer IS NULL OR year <= $8::integer)
	ORDER BY
		CASE WHEN ($1::text IS NULL OR $1::text = '') THEN 0 ELSE 1 END DESC,
		score DESC,
		year DESC
	LIMIT $9 OFFSET $10
`

const countDocumentsQuery = `
	SELECT COUNT(*) FROM documents
	WHERE
		(
			($3::text IS NOT NULL AND slug = $3::text)
			OR
			(
				$1::text IS NULL OR $1::text = ''
				OR lower(title) = lower($1::text)
				OR search_vector @@ websearch_to_tsquery('english', $1::text)
				OR search_vector @@ to_tsquery('english', $2::text)
			)
		)
		AND ($4::text[] IS NULL OR type = ANY($4::text[]))
		AND ($5::text IS NULL OR region = $5::text)
		AND ($6::text IS NULL OR field = $6::text)
		AND ($7::integer IS NULL OR year >= $7::integer)
		AND ($8::integer IS NULL OR year <= $8::integer)
`

// SearchDocumentsParams are the normalized inputs of one catalog search.
type SearchDocumentsParams struct {
	Query       string
	PrefixQuery string
	Slug        string
	Types       []string
	Region      string
	Field       string
	YearFrom    *int
	YearTo      *int
	Limit       int
	Offset      int
}

func (p SearchDocumentsParams) filterArgs() []any {
	return []any{
		p.Query,
		p.PrefixQuery,
		textOrNil(p.Slug),
		typesOrNil(p.Types),
		textOrNil(p.Region),
		textOrNil(p.Field),
		p.YearFrom,
		p.YearTo,
	}
}

// SearchDocuments runs the ranked catalog query and the companion count of
// the full unpaginated match set.
func (r *GuidexDBRepository) SearchDocuments(ctx context.Context, params SearchDocumentsParams) ([]domain.RankedResult, int64, error) {
	args := append(params.filterArgs(), params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, searchDocumentsQuery, args...)
	if err != nil {
		logger.Logger.Error("error searching documents", "error", err, "query", params.Query, "slug", params.Slug)
		return nil, 0, err
	}
	defer rows.Close()

	var results []domain.RankedResult
	for rows.Next() {
		var result domain.RankedResult
		err := rows.Scan(
			&result.ID,
			&result.Type,
			&result.Region,
			&result.Field,
			&result.Title,
			&result.Year,
			&result.Link,
			&result.Authors,
			&result.Source,
			&result.Citation,
			&result.Keywords,
			&result.Score,
		)
		if err != nil {
			logger.Logger.Error("error scanning search result row", "error", err, "query", params.Query)
			return nil, 0, fmt.Errorf("%w: %v", errs.ErrRowMapping, err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countDocumentsQuery, params.filterArgs()...).Scan(&total); err != nil {
		logger.Logger.Error("error counting search results", "error", err, "query", params.Query)
		return nil, 0, err
	}

	return results, total, nil
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func typesOrNil(types []string) any {
	if len(types) == 0 {
		return nil
	}
	return types
}
