package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/types"
)

// SubjectKey is the context local holding the authenticated token subject.
const SubjectKey = "subject"

// Auth validates the Authorization bearer token on every request it guards.
func Auth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return types.Unauthenticated("Missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return types.Unauthenticated("Invalid authorization header format")
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return types.Unauthenticated("Empty token")
		}

		claims, err := services.ValidateToken(cfg, tokenString)
		if err != nil {
			return err
		}

		c.Locals(SubjectKey, claims.Subject)
		return c.Next()
	}
}
