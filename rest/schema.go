package rest

// SearchResponse is the paged result envelope of GET /search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type SearchResult struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Region   *string  `json:"region"`
	Field    *string  `json:"field"`
	Title    string   `json:"title"`
	Year     *int     `json:"year"`
	Link     *string  `json:"link"`
	Authors  *string  `json:"authors"`
	Source   *string  `json:"source"`
	Citation *string  `json:"citation"`
	Keywords []string `json:"keywords"`
	Score    float64  `json:"score"`
	Tier     string   `json:"tier"`
}

type CapabilitiesResponse struct {
	Types     []string           `json:"types"`
	Regions   []string           `json:"regions"`
	Fields    []string           `json:"fields"`
	YearRange *YearRangeResponse `json:"yearRange"`
}

type YearRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type AutocompleteResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type SuggestionResponse struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
