package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/storage"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
	"gorm.io/gorm"
)

// DocumentHandler handles the /pdfs routes
type DocumentHandler struct {
	DB    *gorm.DB
	Store *storage.Store
}

// List handles GET /api/pdfs
// @Summary List documents
// @Tags Documents
// @Produce json
// @Success 200 {object} utils.Envelope
// @Router /pdfs [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docs, err := services.ListDocuments(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, docs, fiber.StatusOK)
}

// Create handles POST /api/pdfs
// @Summary Create a document
// @Tags Documents
// @Accept json
// @Produce json
// @Param body body services.DocumentInput true "document fields"
// @Success 201 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /pdfs [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in services.DocumentInput
	if err := c.BodyParser(&in); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	doc, err := services.CreateDocument(h.DB, in)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, doc, fiber.StatusCreated)
}

// Get handles GET /api/pdfs/:id
// @Summary Get a document with its ordered pages, sections and attachments
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /pdfs/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	doc, err := services.GetDocument(h.DB, id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, doc, fiber.StatusOK)
}

// Update handles PUT /api/pdfs/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var up services.DocumentUpdate
	if err := c.BodyParser(&up); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	doc, err := services.UpdateDocument(h.DB, id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, doc, fiber.StatusOK)
}

// Delete handles DELETE /api/pdfs/:id, cascading to pages, sections and
// attachments.
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteDocument(h.DB, h.Store, id); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Document deleted", fiber.StatusOK)
}
