package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/storage"
	"gorm.io/gorm"
)

// HealthHandler handles the health probe route
type HealthHandler struct {
	Cfg   *config.Config
	DB    *gorm.DB
	Store *storage.Store
}

// Health handles GET /api/health. Probes return their own body, not the
// envelope, so orchestrators can consume them directly.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB, h.Store)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
