// Package errors provides structured error handling for the GuidelineX backend.
// It defines error types with codes, messages, causes, and contextual information
// shared across the rest, usecase, gateway, and driver layers.
package errors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeDatabase   ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeMapping    ErrorCode = "MAPPING_ERROR"
	ErrCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeDatabase, ErrCodeMapping, ErrCodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// DatabaseError creates an AppError for database-related failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// MappingError creates an AppError for store rows that cannot be projected
// into domain results.
func MappingError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeMapping,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// RateLimitError creates an AppError for rate limit rejections.
func RateLimitError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeRateLimit,
		Message: message,
		Context: context,
	}
}

// UnknownError creates an AppError for uncategorized failures.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// LogError logs an AppError with its structured context attached.
func LogError(logger *slog.Logger, err error, operation string) {
	if appErr, ok := err.(*AppError); ok {
		args := []any{"operation", operation, "code", appErr.Code, "error", appErr.Error()}
		for k, v := range appErr.Context {
			args = append(args, k, v)
		}
		logger.Error("application error", args...)
		return
	}
	logger.Error("application error", "operation", operation, "error", err)
}
