package domain

// Filterable catalog dimensions with distinct-value discovery.
const (
	DimensionType   = "type"
	DimensionRegion = "region"
	DimensionField  = "field"
)

// YearRange is the publication year span of the catalog.
type YearRange struct {
	Min int
	Max int
}

// Capabilities is an immutable snapshot of the filter dimensions currently
// present in the catalog. Snapshots are replaced wholesale on refresh, never
// mutated field by field. YearRange is nil when the catalog is empty.
type Capabilities struct {
	Types     []string
	Regions   []string
	Fields    []string
	YearRange *YearRange
}
