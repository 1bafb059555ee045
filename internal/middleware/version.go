package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion is the current API contract version echoed to clients.
const APIVersion = "1.0.0"

// Version parses the X-Api-Version request header, stores it in context for
// handlers that need to branch, and echoes the served version back.
func Version() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := c.Get("X-Api-Version", APIVersion)

		// Support short version aliases
		if requested == "1.0" || requested == "1" {
			requested = "1.0.0"
		}

		c.Locals("apiVersion", requested)
		c.Set("X-Api-Version", APIVersion)

		return c.Next()
	}
}
