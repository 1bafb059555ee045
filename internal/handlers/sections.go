package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
	"gorm.io/gorm"
)

// SectionHandler handles the /sections routes
type SectionHandler struct {
	DB *gorm.DB
}

// List handles GET /api/sections?page_id=
func (h *SectionHandler) List(c *fiber.Ctx) error {
	pageID, err := parentFilter(c, "page_id")
	if err != nil {
		return err
	}

	sections, err := services.ListSections(h.DB, pageID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, sections, fiber.StatusOK)
}

// Create handles POST /api/sections
// @Summary Create a section under a page
// @Tags Sections
// @Accept json
// @Produce json
// @Param body body services.SectionInput true "section fields"
// @Success 201 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /sections [post]
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	var in services.SectionInput
	if err := c.BodyParser(&in); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	section, err := services.CreateSection(h.DB, in)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, section, fiber.StatusCreated)
}

// Get handles GET /api/sections/:id
func (h *SectionHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	section, err := services.GetSection(h.DB, id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, section, fiber.StatusOK)
}

// Update handles PUT /api/sections/:id
func (h *SectionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var up services.SectionUpdate
	if err := c.BodyParser(&up); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	section, err := services.UpdateSection(h.DB, id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, section, fiber.StatusOK)
}

// Delete handles DELETE /api/sections/:id
func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteSection(h.DB, id); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Section deleted", fiber.StatusOK)
}

// Reorder handles POST /api/sections/reorder
func (h *SectionHandler) Reorder(c *fiber.Ctx) error {
	var body reorderRequest
	if err := c.BodyParser(&body); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}
	if body.PageID == 0 {
		return types.ValidationField("page_id", "The page_id field is required.")
	}

	if err := services.ReorderSections(h.DB, body.PageID.Uint64(), types.Uint64s(body.Ids)); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Sections reordered", fiber.StatusOK)
}
