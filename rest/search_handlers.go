package rest

import (
	"net/http"
	"strconv"

	"guidelinex/config"
	"guidelinex/di"
	"guidelinex/domain"

	"github.com/labstack/echo/v4"
)

func registerSearchRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.GET("/search", searchHandler(container, cfg))
	e.GET("/search/capabilities", capabilitiesHandler(container))
	e.GET("/search/autocomplete", autocompleteHandler(container))
}

// searchHandler executes a clinical document search with optional filters
// for type, region, field, and year range.
func searchHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := domain.SearchQuery{
			Query:  c.QueryParam("q"),
			Slug:   c.QueryParam("slug"),
			Types:  c.QueryParams()["type"],
			Region: c.QueryParam("region"),
			Field:  c.QueryParam("field"),
			Size:   cfg.Search.DefaultPageSize,
		}

		if yearFromStr := c.QueryParam("year_from"); yearFromStr != "" {
			yearFrom, err := strconv.Atoi(yearFromStr)
			if err != nil {
				return handleValidationError(c, "year_from must be an integer", "year_from", yearFromStr)
			}
			query.YearFrom = &yearFrom
		}

		if yearToStr := c.QueryParam("year_to"); yearToStr != "" {
			yearTo, err := strconv.Atoi(yearToStr)
			if err != nil {
				return handleValidationError(c, "year_to must be an integer", "year_to", yearToStr)
			}
			query.YearTo = &yearTo
		}

		if pageStr := c.QueryParam("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page < 0 {
				return handleValidationError(c, "page must be a non-negative integer", "page", pageStr)
			}
			query.Page = page
		}

		if sizeStr := c.QueryParam("size"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil || size <= 0 {
				return handleValidationError(c, "size must be a positive integer", "size", sizeStr)
			}
			query.Size = size
		}

		page, err := container.SearchDocumentsUsecase.Execute(c.Request().Context(), query)
		if err != nil {
			return handleError(c, err, "search")
		}

		return c.JSON(http.StatusOK, toSearchResponse(page))
	}
}

// capabilitiesHandler exposes the dynamic filter dimensions derived from the
// catalog, for UI filter initialization.
func capabilitiesHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		capabilities, err := container.CapabilitiesUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "getCapabilities")
		}

		return c.JSON(http.StatusOK, toCapabilitiesResponse(capabilities))
	}
}

// autocompleteHandler returns up to 5 suggestions for partial queries of at
// least 3 characters. It always answers 200; failures degrade to an empty
// list.
func autocompleteHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		suggestions := container.AutocompleteUsecase.Execute(c.Request().Context(), c.QueryParam("q"))

		response := AutocompleteResponse{Suggestions: make([]SuggestionResponse, 0, len(suggestions))}
		for _, s := range suggestions {
			response.Suggestions = append(response.Suggestions, SuggestionResponse{Title: s.Title, Slug: s.Slug})
		}
		return c.JSON(http.StatusOK, response)
	}
}

func toSearchResponse(page *domain.SearchPage) SearchResponse {
	results := make([]SearchResult, 0, len(page.Results))
	for _, r := range page.Results {
		results = append(results, SearchResult{
			ID:       r.ID.String(),
			Type:     r.Type,
			Region:   r.Region,
			Field:    r.Field,
			Title:    r.Title,
			Year:     r.Year,
			Link:     r.Link,
			Authors:  r.Authors,
			Source:   r.Source,
			Citation: r.Citation,
			Keywords: r.Keywords,
			Score:    r.Score,
			Tier:     string(r.Tier),
		})
	}
	return SearchResponse{
		Results: results,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
}

func toCapabilitiesResponse(capabilities *domain.Capabilities) CapabilitiesResponse {
	response := CapabilitiesResponse{
		Types:   capabilities.Types,
		Regions: capabilities.Regions,
		Fields:  capabilities.Fields,
	}
	if capabilities.YearRange != nil {
		response.YearRange = &YearRangeResponse{
			Min: capabilities.YearRange.Min,
			Max: capabilities.YearRange.Max,
		}
	}
	return response
}
