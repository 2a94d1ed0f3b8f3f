// Package domain holds the core entities and value types of the GuidelineX
// clinical document catalog.
package domain

import "github.com/google/uuid"

// MatchTier is the priority class a document's match falls into. Tiers are
// mutually exclusive and evaluated slug > title > ranked > no-query.
type MatchTier string

const (
	TierSlugExact  MatchTier = "slug_exact"
	TierTitleExact MatchTier = "title_exact"
	TierRanked     MatchTier = "ranked"
	TierNoQuery    MatchTier = "no_query"
)

// Scores assigned by the store for the short-circuit tiers.
const (
	SlugExactScore  = 1000.0
	TitleExactScore = 100.0
)

// TierForScore derives the match tier from the score the store computed.
func TierForScore(score float64, hasQuery bool) MatchTier {
	switch {
	case score == SlugExactScore:
		return TierSlugExact
	case score == TitleExactScore:
		return TierTitleExact
	case !hasQuery:
		return TierNoQuery
	default:
		return TierRanked
	}
}

// RankedResult is one scored document projection returned from a search.
// Optional catalog fields are pointers so absent database values survive the
// round trip without inventing empty strings.
type RankedResult struct {
	ID       uuid.UUID
	Type     string
	Region   *string
	Field    *string
	Title    string
	Year     *int
	Link     *string
	Authors  *string
	Source   *string
	Citation *string
	Keywords []string
	Score    float64
	Tier     MatchTier
}

// SearchPage is a page of ranked results plus the total size of the full
// unpaginated match set.
type SearchPage struct {
	Results []RankedResult
	Total   int64
	Limit   int
	Offset  int
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Title string
	Slug  string
}
