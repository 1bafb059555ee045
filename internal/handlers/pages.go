package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
	"gorm.io/gorm"
)

// PageHandler handles the /pages routes
type PageHandler struct {
	DB *gorm.DB
}

// List handles GET /api/pages?pdf_id=
// @Summary List pages in sibling order
// @Tags Pages
// @Produce json
// @Param pdf_id query int false "Filter by document"
// @Success 200 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /pages [get]
func (h *PageHandler) List(c *fiber.Ctx) error {
	pdfID, err := parentFilter(c, "pdf_id")
	if err != nil {
		return err
	}

	pages, err := services.ListPages(h.DB, pdfID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, pages, fiber.StatusOK)
}

// Create handles POST /api/pages
// @Summary Create a page under a document
// @Tags Pages
// @Accept json
// @Produce json
// @Param body body services.PageInput true "page fields"
// @Success 201 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /pages [post]
func (h *PageHandler) Create(c *fiber.Ctx) error {
	var in services.PageInput
	if err := c.BodyParser(&in); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	page, err := services.CreatePage(h.DB, in)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, page, fiber.StatusCreated)
}

// Get handles GET /api/pages/:id
func (h *PageHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	page, err := services.GetPage(h.DB, id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, page, fiber.StatusOK)
}

// Update handles PUT /api/pages/:id
func (h *PageHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var up services.PageUpdate
	if err := c.BodyParser(&up); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	page, err := services.UpdatePage(h.DB, id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, page, fiber.StatusOK)
}

// Delete handles DELETE /api/pages/:id, removing the page's sections with it.
func (h *PageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeletePage(h.DB, id); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Page deleted", fiber.StatusOK)
}

// Reorder handles POST /api/pages/reorder
// @Summary Reorder the pages of a document
// @Description Rewrites each page's order to its position in ids
// @Tags Pages
// @Accept json
// @Produce json
// @Param body body object true "pdf_id and ids"
// @Success 200 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /pages/reorder [post]
func (h *PageHandler) Reorder(c *fiber.Ctx) error {
	var body reorderRequest
	if err := c.BodyParser(&body); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}
	if body.PdfID == 0 {
		return types.ValidationField("pdf_id", "The pdf_id field is required.")
	}

	if err := services.ReorderPages(h.DB, body.PdfID.Uint64(), types.Uint64s(body.Ids)); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Pages reordered", fiber.StatusOK)
}
