package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guidelinex/config"
	"guidelinex/di"
	"guidelinex/domain"
	"guidelinex/mocks"
	"guidelinex/port/search_port"
	"guidelinex/usecase/autocomplete_usecase"
	"guidelinex/usecase/capabilities_usecase"
	"guidelinex/usecase/search_usecase"
	"guidelinex/usecase/stats_usecase"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	server       *echo.Echo
	searchPort   *mocks.MockSearchDocumentsPort
	capPort      *mocks.MockCapabilitiesPort
	autoPort     *mocks.MockAutocompletePort
	statsPort    *mocks.MockSystemStatsPort
	searchCalled chan struct{}
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	logger.InitLogger(false)

	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		searchPort:   mocks.NewMockSearchDocumentsPort(ctrl),
		capPort:      mocks.NewMockCapabilitiesPort(ctrl),
		autoPort:     mocks.NewMockAutocompletePort(ctrl),
		statsPort:    mocks.NewMockSystemStatsPort(ctrl),
		searchCalled: make(chan struct{}, 16),
	}

	f.statsPort.EXPECT().IncrementSearchCount(gomock.Any()).DoAndReturn(func(context.Context) error {
		f.searchCalled <- struct{}{}
		return nil
	}).AnyTimes()

	container := &di.ApplicationComponents{
		SearchDocumentsUsecase: search_usecase.NewSearchDocumentsUsecase(f.searchPort, f.statsPort, 50),
		CapabilitiesUsecase:    capabilities_usecase.NewCapabilitiesUsecase(f.capPort, time.Hour, nil),
		AutocompleteUsecase:    autocomplete_usecase.NewAutocompleteUsecase(f.autoPort),
		SystemStatsUsecase:     stats_usecase.NewSystemStatsUsecase(f.statsPort),
	}

	cfg := &config.Config{}
	cfg.Search.DefaultPageSize = 20
	cfg.Search.MaxPageSize = 50

	e := echo.New()
	registerSearchRoutes(e, container, cfg)
	registerStatsRoutes(e, container)
	f.server = e

	return f
}

func (f *handlerFixture) waitSearchCounted(t *testing.T) {
	t.Helper()
	select {
	case <-f.searchCalled:
	case <-time.After(2 * time.Second):
		t.Fatal("search counter was never incremented")
	}
}

func TestSearchHandler(t *testing.T) {
	f := newHandlerFixture(t)

	id := uuid.New()
	region := "EU"
	year := 2023

	f.searchPort.EXPECT().
		SearchDocuments(gomock.Any(), search_port.SearchRequest{
			Query:       "heart failure",
			PrefixQuery: "heart:* & failure:*",
			Limit:       20,
			Offset:      0,
		}).
		Return([]domain.RankedResult{
			{ID: id, Type: "guideline", Region: &region, Title: "Heart Failure Guideline", Year: &year, Score: 0.8},
		}, int64(1), nil).
		Times(1)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=heart+failure", nil))
	f.waitSearchCounted(t)

	require.Equal(t, http.StatusOK, rec.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Total)
	assert.Equal(t, 20, response.Limit)
	require.Len(t, response.Results, 1)
	assert.Equal(t, id.String(), response.Results[0].ID)
	assert.Equal(t, "Heart Failure Guideline", response.Results[0].Title)
	require.NotNil(t, response.Results[0].Region)
	assert.Equal(t, "EU", *response.Results[0].Region)
	assert.Equal(t, string(domain.TierRanked), response.Results[0].Tier)
}

func TestSearchHandler_FiltersAndPagination(t *testing.T) {
	f := newHandlerFixture(t)

	yearFrom := 2015
	yearTo := 2024

	f.searchPort.EXPECT().
		SearchDocuments(gomock.Any(), search_port.SearchRequest{
			Query:       "sepsis",
			PrefixQuery: "sepsis:*",
			Types:       []string{"guideline", "consensus"},
			Region:      "EU",
			Field:       "cardiology",
			YearFrom:    &yearFrom,
			YearTo:      &yearTo,
			Limit:       10,
			Offset:      20,
		}).
		Return([]domain.RankedResult{}, int64(0), nil).
		Times(1)

	target := "/search?q=sepsis&type=guideline&type=consensus&region=EU&field=cardiology&year_from=2015&year_to=2024&page=2&size=10"
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	f.waitSearchCounted(t)

	require.Equal(t, http.StatusOK, rec.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 10, response.Limit)
	assert.Equal(t, 20, response.Offset)
	assert.NotNil(t, response.Results)
}

func TestSearchHandler_InvalidParams(t *testing.T) {
	f := newHandlerFixture(t)

	targets := []string{
		"/search?q=heart&year_from=abc",
		"/search?q=heart&year_to=xyz",
		"/search?q=heart&page=-1",
		"/search?q=heart&page=two",
		"/search?q=heart&size=0",
		"/search?q=heart&size=big",
	}

	for _, target := range targets {
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, target)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, string(errors.ErrCodeValidation), response.Code, target)
	}
}

func TestSearchHandler_StoreError(t *testing.T) {
	f := newHandlerFixture(t)

	f.searchPort.EXPECT().
		SearchDocuments(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.DatabaseError("failed to search documents", nil, nil)).
		Times(1)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=heart", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, string(errors.ErrCodeDatabase), response.Code)
}

func TestCapabilitiesHandler(t *testing.T) {
	f := newHandlerFixture(t)

	f.capPort.EXPECT().FetchDistinctValues(gomock.Any(), domain.DimensionType).
		Return([]string{"guideline"}, nil).Times(1)
	f.capPort.EXPECT().FetchDistinctValues(gomock.Any(), domain.DimensionRegion).
		Return([]string{"EU", "US"}, nil).Times(1)
	f.capPort.EXPECT().FetchDistinctValues(gomock.Any(), domain.DimensionField).
		Return([]string{"cardiology"}, nil).Times(1)
	f.capPort.EXPECT().FetchYearRange(gomock.Any()).
		Return(&domain.YearRange{Min: 1999, Max: 2024}, nil).Times(1)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/capabilities", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response CapabilitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []string{"guideline"}, response.Types)
	assert.Equal(t, []string{"EU", "US"}, response.Regions)
	require.NotNil(t, response.YearRange)
	assert.Equal(t, 1999, response.YearRange.Min)
	assert.Equal(t, 2024, response.YearRange.Max)
}

func TestAutocompleteHandler(t *testing.T) {
	f := newHandlerFixture(t)

	f.autoPort.EXPECT().
		FetchSuggestions(gomock.Any(), "hyper:*", "hyper").
		Return([]domain.Suggestion{{Title: "Hypertension Guideline", Slug: "hypertension-guideline"}}, nil).
		Times(1)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/autocomplete?q=hyper", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response AutocompleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Suggestions, 1)
	assert.Equal(t, "Hypertension Guideline", response.Suggestions[0].Title)
}

func TestAutocompleteHandler_ShortQueryStillOK(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/autocomplete?q=hy", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response AutocompleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.Suggestions)
}
