package search_port

import (
	"context"

	"guidelinex/domain"
)

// SearchRequest carries the normalized query and filters down to the store.
type SearchRequest struct {
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

// SearchDocumentsPort is the document store capability consumed by the
// search orchestrator: one page of scored rows plus the total match count.
type SearchDocumentsPort interface {
	SearchDocuments(ctx context.Context, req SearchRequest) ([]domain.RankedResult, int64, error)
}
