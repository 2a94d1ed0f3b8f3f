package domain

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SearchQuery carries one search request through the pipeline. It is
// request-scoped and discarded once the response has been built.
type SearchQuery struct {
	Query    string
	Slug     string
	Types    []string
	Region   string
	Field    string
	YearFrom *int
	YearTo   *int
	Page     int
	Size     int
}

// HasFilters reports whether any filter dimension is set.
func (q SearchQuery) HasFilters() bool {
	return len(q.Types) > 0 || q.Region != "" || q.Field != "" || q.YearFrom != nil || q.YearTo != nil
}

// NormalizedQuery is the canonical form of raw query text.
//
// Original keeps the trimmed input untouched: exact-title matching and the
// store's websearch parser both need the punctuation that Canonical strips
// (titles like "AHA/ACC ..." would otherwise never match exactly).
// Prefix is a tsquery expression joining canonical tokens with ":* & " and
// a trailing ":*", which enables partial word matching.
type NormalizedQuery struct {
	Original  string
	Canonical string
	Prefix    string
}

// NormalizeQuery cleans raw query text into its canonical and prefix forms.
// Absent input yields all-empty outputs; it never fails.
func NormalizeQuery(raw string) NormalizedQuery {
	original := strings.TrimSpace(raw)

	canonical := strings.ToLower(original)
	canonical = nonAlnumPattern.ReplaceAllString(canonical, " ")
	canonical = strings.TrimSpace(whitespacePattern.ReplaceAllString(canonical, " "))

	prefix := ""
	if canonical != "" {
		prefix = whitespacePattern.ReplaceAllString(canonical, ":* & ") + ":*"
	}

	return NormalizedQuery{
		Original:  original,
		Canonical: canonical,
		Prefix:    prefix,
	}
}

// HasQuery reports whether any usable query text survived normalization.
func (n NormalizedQuery) HasQuery() bool {
	return n.Canonical != ""
}
