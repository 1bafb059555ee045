package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/handlers"
	"github.com/proforge/profilepdf/internal/middleware"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(cfg)})
	app.Use(middleware.Auth(cfg))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.SubjectKey).(string))
	})
	return app
}

func TestAuthRejectsBadHeaders(t *testing.T) {
	cfg := &config.Config{JWTSecret: "middleware-test-key", TokenTTLHours: 1}
	app := newGuardedApp(cfg)

	cases := map[string]string{
		"missing":     "",
		"wrongScheme": "Basic abc",
		"emptyToken":  "Bearer ",
		"garbage":     "Bearer not.a.token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set(fiber.HeaderAuthorization, header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthStoresSubject(t *testing.T) {
	cfg := &config.Config{JWTSecret: "middleware-test-key", TokenTTLHours: 1}
	app := newGuardedApp(cfg)

	token, _, err := services.IssueToken(cfg, "admin@proforge.example")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "admin@proforge.example", string(body))
}

func TestVersionAliases(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Version())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	for _, requested := range []string{"", "1", "1.0", "1.0.0"} {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if requested != "" {
			req.Header.Set("X-Api-Version", requested)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, middleware.APIVersion, resp.Header.Get("X-Api-Version"))
	}
}
