package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
	"gorm.io/gorm"
)

// SettingHandler handles the /settings routes
type SettingHandler struct {
	DB *gorm.DB
}

// List handles GET /api/settings
func (h *SettingHandler) List(c *fiber.Ctx) error {
	settings, err := services.ListSettings(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, settings, fiber.StatusOK)
}

// Create handles POST /api/settings
func (h *SettingHandler) Create(c *fiber.Ctx) error {
	var in services.SettingInput
	if err := c.BodyParser(&in); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	setting, err := services.CreateSetting(h.DB, in)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, setting, fiber.StatusCreated)
}

// Get handles GET /api/settings/:id
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	setting, err := services.GetSetting(h.DB, id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, setting, fiber.StatusOK)
}

// Update handles PUT /api/settings/:id
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var up services.SettingUpdate
	if err := c.BodyParser(&up); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	setting, err := services.UpdateSetting(h.DB, id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, setting, fiber.StatusOK)
}
