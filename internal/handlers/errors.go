package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
)

// ErrorHandler maps every error onto the uniform JSON envelope. Unexpected
// faults are redacted outside debug mode.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := types.AsAppError(err); ok {
			if appErr.Errors != nil {
				return utils.ValidationErrorResponse(c, appErr.Message, appErr.Errors)
			}
			message := appErr.Message
			if appErr.Code == fiber.StatusInternalServerError && !cfg.Debug {
				log.Printf("Unexpected error on %s: %v", c.OriginalURL(), err)
				message = "Internal server error"
			}
			return utils.ErrorResponse(c, message, appErr.Code)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			message := fiberErr.Message
			if fiberErr.Code == fiber.StatusNotFound {
				// Router misses carry "Cannot GET /path"; don't echo it back.
				message = "Resource not found"
			}
			return utils.ErrorResponse(c, message, fiberErr.Code)
		}

		log.Printf("Unexpected error on %s: %v", c.OriginalURL(), err)
		message := "Internal server error"
		if cfg.Debug {
			message = err.Error()
		}
		return utils.ErrorResponse(c, message, fiber.StatusInternalServerError)
	}
}
