package errors

import "errors"

// Sentinel errors usable with errors.Is across layers.
var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded")
	ErrInvalidInput        = errors.New("invalid input")
	ErrRowMapping          = errors.New("row mapping failed")
)

// IsDatabaseError checks if an error represents a database-related problem.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsRateLimitError checks if an error represents a rate limiting rejection.
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// IsValidationError checks if an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
