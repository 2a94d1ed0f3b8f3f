package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	withCause := DatabaseError("failed to search documents", stderrors.New("connection refused"), nil)
	assert.Equal(t, "DATABASE_ERROR: failed to search documents (caused by: connection refused)", withCause.Error())

	withoutCause := ValidationError("page must not be negative", nil)
	assert.Equal(t, "VALIDATION_ERROR: page must not be negative", withoutCause.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := DatabaseError("failed to search documents", cause, nil)

	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrCodeDatabase, appErr.Code)
}

func TestAppError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "validation", err: ValidationError("bad input", nil), want: http.StatusBadRequest},
		{name: "rate limit", err: RateLimitError("too many requests", nil), want: http.StatusTooManyRequests},
		{name: "database", err: DatabaseError("down", nil, nil), want: http.StatusInternalServerError},
		{name: "mapping", err: MappingError("bad row", nil, nil), want: http.StatusInternalServerError},
		{name: "unknown", err: UnknownError("boom", nil, nil), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatusCode())
		})
	}
}

func TestRowMappingSentinel(t *testing.T) {
	wrapped := MappingError("failed to map search result row", ErrRowMapping, nil)
	assert.True(t, stderrors.Is(wrapped, ErrRowMapping))
}
