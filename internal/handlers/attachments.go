package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/services"
	"github.com/proforge/profilepdf/internal/storage"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
	"gorm.io/gorm"
)

// AttachmentHandler handles the /attachments routes
type AttachmentHandler struct {
	DB    *gorm.DB
	Store *storage.Store
}

// List handles GET /api/attachments?pdf_id=
func (h *AttachmentHandler) List(c *fiber.Ctx) error {
	pdfID, err := parentFilter(c, "pdf_id")
	if err != nil {
		return err
	}

	attachments, err := services.ListAttachments(h.DB, pdfID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, attachments, fiber.StatusOK)
}

// Create handles POST /api/attachments (multipart/form-data)
// @Summary Upload an attachment for a document
// @Tags Attachments
// @Accept multipart/form-data
// @Produce json
// @Param pdf_id formData int true "Parent document ID"
// @Param order formData int false "Sibling order, defaults to end of list"
// @Param file formData file true "File to attach"
// @Success 201 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /attachments [post]
func (h *AttachmentHandler) Create(c *fiber.Ctx) error {
	pdfID, err := strconv.ParseUint(c.FormValue("pdf_id"), 10, 64)
	if err != nil || pdfID == 0 {
		return types.ValidationField("pdf_id", "The pdf_id field is required.")
	}

	var order *int
	if raw := c.FormValue("order"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return types.ValidationField("order", "The order field must be an integer.")
		}
		order = &n
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return types.ValidationField("file", "The file field is required.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return types.Unexpected(err)
	}
	defer file.Close()

	attachment, err := services.CreateAttachment(h.DB, h.Store, services.AttachmentUpload{
		PdfID:    pdfID,
		Name:     fileHeader.Filename,
		MimeType: fileHeader.Header.Get(fiber.HeaderContentType),
		Order:    order,
		File:     file,
	})
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, attachment, fiber.StatusCreated)
}

// Get handles GET /api/attachments/:id
func (h *AttachmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	attachment, err := services.GetAttachment(h.DB, id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, attachment, fiber.StatusOK)
}

// Update handles PUT /api/attachments/:id
func (h *AttachmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var up services.AttachmentUpdate
	if err := c.BodyParser(&up); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	attachment, err := services.UpdateAttachment(h.DB, id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, attachment, fiber.StatusOK)
}

// Delete handles DELETE /api/attachments/:id. The backing file goes with the
// row.
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteAttachment(h.DB, h.Store, id); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Attachment deleted", fiber.StatusOK)
}

// Download handles GET /api/attachments/:id/download as a raw binary stream,
// the one route outside the JSON envelope.
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	attachment, err := services.GetAttachment(h.DB, id)
	if err != nil {
		return err
	}

	file, err := h.Store.Open(attachment.Path)
	if err != nil {
		return types.NotFound("Attachment file not found")
	}

	if attachment.MimeType != "" {
		c.Set(fiber.HeaderContentType, attachment.MimeType)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+attachment.Name+`"`)
	return c.SendStream(file, int(attachment.Size))
}

// Reorder handles POST /api/attachments/reorder
func (h *AttachmentHandler) Reorder(c *fiber.Ctx) error {
	var body reorderRequest
	if err := c.BodyParser(&body); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}
	if body.PdfID == 0 {
		return types.ValidationField("pdf_id", "The pdf_id field is required.")
	}

	if err := services.ReorderAttachments(h.DB, body.PdfID.Uint64(), types.Uint64s(body.Ids)); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Attachments reordered", fiber.StatusOK)
}
