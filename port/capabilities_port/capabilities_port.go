package capabilities_port

import (
	"context"

	"guidelinex/domain"
)

// CapabilitiesPort exposes the filter dimensions currently present in the
// catalog.
type CapabilitiesPort interface {
	FetchDistinctValues(ctx context.Context, dimension string) ([]string, error)
	FetchYearRange(ctx context.Context) (*domain.YearRange, error)
}
