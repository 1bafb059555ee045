package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
)

// AuthHandler handles the login route
type AuthHandler struct {
	Cfg *config.Config
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange admin credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "email and password"
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Failure 429 {object} utils.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}
	if body.Email == "" || body.Password == "" {
		errs := map[string][]string{}
		if body.Email == "" {
			errs["email"] = []string{"The email field is required."}
		}
		if body.Password == "" {
			errs["password"] = []string{"The password field is required."}
		}
		return types.Validation(errs)
	}

	if err := services.Authenticate(h.Cfg, body.Email, body.Password); err != nil {
		return err
	}

	token, expiresAt, err := services.IssueToken(h.Cfg, body.Email)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	}, fiber.StatusOK)
}
