package domain

// SystemStats is the singleton row of platform-wide counters.
type SystemStats struct {
	ID          int64 `json:"id"`
	VisitCount  int64 `json:"visitCount"`
	SearchCount int64 `json:"searchCount"`
}
