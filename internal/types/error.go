package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error currency of the service. Every failure that reaches a
// handler is one of these; the global error handler maps it onto the JSON
// envelope.
type AppError struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NotFound reports a missing row or route.
func NotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

// Validation reports per-field validation failures, keyed by field name.
func Validation(errs map[string][]string) *AppError {
	return &AppError{
		Code:    fiber.StatusUnprocessableEntity,
		Message: "The given data was invalid.",
		Errors:  errs,
	}
}

// ValidationField reports a single-field validation failure.
func ValidationField(field, message string) *AppError {
	return Validation(map[string][]string{field: {message}})
}

// Unauthenticated reports a missing or invalid credential.
func Unauthenticated(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

// Forbidden reports an authenticated caller without sufficient rights.
func Forbidden(message string) *AppError {
	return &AppError{Code: fiber.StatusForbidden, Message: message}
}

// RateLimited reports limiter exhaustion.
func RateLimited() *AppError {
	return &AppError{Code: fiber.StatusTooManyRequests, Message: "Too many requests."}
}

// Unexpected wraps an internal fault. The message is redacted by the error
// handler unless debug mode is on.
func Unexpected(err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: err.Error()}
}

// AsAppError unwraps err to an *AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
