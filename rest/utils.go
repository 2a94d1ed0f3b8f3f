package rest

import (
	"net/http"

	"guidelinex/utils/errors"
	"guidelinex/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses using the application error
// taxonomy; anything unrecognized becomes an opaque 500.
func handleError(c echo.Context, err error, operation string) error {
	if appErr, ok := err.(*errors.AppError); ok {
		logger.Logger.Error("REST handler error",
			"error", appErr.Error(),
			"code", appErr.Code,
			"operation", operation,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
		return c.JSON(appErr.HTTPStatusCode(), ErrorResponse{
			Error:   "error",
			Code:    string(appErr.Code),
			Message: appErr.Message,
		})
	}

	logger.Logger.Error("REST handler error",
		"error", err,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "error",
		Code:    string(errors.ErrCodeUnknown),
		Message: "internal server error",
	})
}

// handleValidationError rejects invalid request input with a 400.
func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	validationErr := errors.ValidationError(message, map[string]interface{}{
		"field": field,
		"value": value,
		"path":  c.Request().URL.Path,
	})

	logger.Logger.Error("REST validation error",
		"error", validationErr.Error(),
		"field", field,
		"value", value,
		"path", c.Request().URL.Path,
	)
	return c.JSON(validationErr.HTTPStatusCode(), ErrorResponse{
		Error:   "error",
		Code:    string(validationErr.Code),
		Message: validationErr.Message,
	})
}
