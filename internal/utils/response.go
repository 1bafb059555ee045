package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform JSON body every endpoint returns.
type Envelope struct {
	Status  bool                `json:"status"`
	Code    int                 `json:"code"`
	Message *string             `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// SuccessResponse sends a success envelope with the given payload and status.
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(Envelope{
		Status: true,
		Code:   status,
		Data:   data,
	})
}

// MessageResponse sends a success envelope carrying only a message.
func MessageResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(Envelope{
		Status:  true,
		Code:    status,
		Message: &message,
	})
}

// ErrorResponse sends an error envelope.
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(Envelope{
		Status:  false,
		Code:    status,
		Message: &message,
	})
}

// ValidationErrorResponse sends a 422 envelope with per-field messages.
func ValidationErrorResponse(c *fiber.Ctx, message string, errs map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Envelope{
		Status:  false,
		Code:    fiber.StatusUnprocessableEntity,
		Message: &message,
		Errors:  errs,
	})
}
