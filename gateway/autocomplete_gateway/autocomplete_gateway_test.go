package autocomplete_gateway

import (
	"context"
	stderrors "errors"
	"testing"

	"guidelinex/driver/guidex_db"
	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutocompleteGateway_NilRepository(t *testing.T) {
	logger.InitLogger(false)

	gateway := NewAutocompleteGatewayWithRepository(nil)

	_, err := gateway.FetchSuggestions(context.Background(), "hyper:*", "hyper")
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrCodeDatabase, appErr.Code)
}

func TestAutocompleteGateway_Success(t *testing.T) {
	logger.InitLogger(false)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	gateway := NewAutocompleteGatewayWithRepository(guidex_db.NewGuidexDBRepository(mock))

	title := "Hypertension Guideline"
	slug := "hypertension-guideline"
	mock.ExpectQuery("SELECT title, slug").
		WithArgs("hyper:*", "hyper").
		WillReturnRows(pgxmock.NewRows([]string{"title", "slug"}).AddRow(&title, &slug))

	suggestions, err := gateway.FetchSuggestions(context.Background(), "hyper:*", "hyper")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Hypertension Guideline", suggestions[0].Title)
	assert.Equal(t, "hypertension-guideline", suggestions[0].Slug)
}

func TestAutocompleteGateway_DriverFailureBecomesDatabaseError(t *testing.T) {
	logger.InitLogger(false)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	gateway := NewAutocompleteGatewayWithRepository(guidex_db.NewGuidexDBRepository(mock))

	mock.ExpectQuery("SELECT title, slug").
		WithArgs("hyper:*", "hyper").
		WillReturnError(stderrors.New("connection refused"))

	_, err = gateway.FetchSuggestions(context.Background(), "hyper:*", "hyper")
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrCodeDatabase, appErr.Code)
}
