package guidex_db

import (
	"context"
	"errors"
	"testing"

	errs "guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestSearchDocuments_RankedResults(t *testing.T) {
	logger.InitLogger(false)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &GuidexDBRepository{pool: mock}

	id1 := uuid.New()
	id2 := uuid.New()
	region := "EU"
	year1 := 2023
	link := "https://example.org/doc"

	rows := pgxmock.NewRows([]string{
		"id", "type", "region", "field", "title", "year",
		"link", "authors", "source", "citation", "keywords", "score",
	}).
		AddRow(id1, "guideline", &region, nil, "Heart Failure Guideline", &year1,
			&link, nil, nil, nil, []string{"heart", "failure"}, 0.73).
		AddRow(id2, "review", nil, nil, "Heart Transplant Review", nil,
			nil, nil, nil, nil, nil, 0.12)

	mock.ExpectQuery("SELECT").
		WithArgs(anyArgs(10)...).
		WillReturnRows(rows)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(anyArgs(8)...).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	results, total, err := repo.SearchDocuments(context.Background(), SearchDocumentsParams{
		Query:       "heart",
		PrefixQuery: "heart:*",
		Limit:       20,
		Offset:      0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, results, 2)

	assert.Equal(t, id1, results[0].ID)
	assert.Equal(t, "guideline", results[0].Type)
	require.NotNil(t, results[0].Region)
	assert.Equal(t, "EU", *results[0].Region)
	assert.Nil(t, results[0].Field)
	require.NotNil(t, results[0].Year)
	assert.Equal(t, 2023, *results[0].Year)
	assert.Equal(t, []string{"heart", "failure"}, results[0].Keywords)
	assert.InDelta(t, 0.73, results[0].Score, 1e-9)

	assert.Nil(t, results[1].Region)
	assert.Nil(t, results[1].Year)
	assert.Nil(t, results[1].Keywords)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchDocuments_Empty(t *testing.T) {
	logger.InitLogger(false)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &GuidexDBRepository{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs(anyArgs(10)...).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "type", "region", "field", "title", "year",
			"link", "authors", "source", "citation", "keywords", "score",
		}))

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(anyArgs(8)...).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	results, total, err := repo.SearchDocuments(context.Background(), SearchDocumentsParams{
		Query:       "nonexistent",
		PrefixQuery: "nonexistent:*",
		Limit:       20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, results)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchDocuments_QueryError(t *testing.T) {
	logger.InitLogger(false)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &GuidexDBRepository{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs(anyArgs(10)...).
		WillReturnError(errors.New("connection refused"))

	_, _, err = repo.SearchDocuments(context.Background(), SearchDocumentsParams{
		Query: "heart",
		Limit: 20,
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, errs.ErrRowMapping))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchDocuments_ScanFailureIsMappingError(t *testing.T) {
	logger.InitLogger(false)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &GuidexDBRepository{pool: mock}

	// title column holds an int, which cannot scan into a string
	rows := pgxmock.NewRows([]string{
		"id", "type", "region", "field", "title", "year",
		"link", "authors", "source", "citation", "keywords", "score",
	}).AddRow(uuid.New(), "guideline", nil, nil, 12345, nil,
		nil, nil, nil, nil, nil, 0.5)

	mock.ExpectQuery("SELECT").
		WithArgs(anyArgs(10)...).
		WillReturnRows(rows)

	_, _, err = repo.SearchDocuments(context.Background(), SearchDocumentsParams{
		Query: "heart",
		Limit: 20,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrRowMapping))
}

func TestSearchDocumentsParams_FilterArgs(t *testing.T) {
	yearFrom := 2015
	params := SearchDocumentsParams{
		Query:       "sepsis",
		PrefixQuery: "sepsis:*",
		Types:       []string{"guideline", "consensus"},
		YearFrom:    &yearFrom,
	}

	args := params.filterArgs()
	require.Len(t, args, 8)
	assert.Equal(t, "sepsis", args[0])
	assert.Equal(t, "sepsis:*", args[1])
	assert.Nil(t, args[2]) // slug
	assert.Equal(t, []string{"guideline", "consensus"}, args[3])
	assert.Nil(t, args[4]) // region
	assert.Nil(t, args[5]) // field
	assert.Equal(t, &yearFrom, args[6])
	assert.Nil(t, args[7])
}
