package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/render"
	"github.com/proforge/profilepdf/internal/types"
	"github.com/proforge/profilepdf/internal/utils"
)

// TemplateHandler handles the /templates routes
type TemplateHandler struct{}

// List handles GET /api/templates
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, render.List(), fiber.StatusOK)
}

// Get handles GET /api/templates/:name
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	tmpl, ok := render.Get(c.Params("name"))
	if !ok {
		return types.NotFound("Template not found")
	}
	return utils.SuccessResponse(c, tmpl, fiber.StatusOK)
}

// Render handles POST /api/templates/:name/render
// @Summary Render a section template with field values
// @Description Returns the HTML fragment the client previews and stores as section data
// @Tags Templates
// @Accept json
// @Produce json
// @Param name path string true "Template name"
// @Param body body object true "field values keyed by template field"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /templates/{name}/render [post]
func (h *TemplateHandler) Render(c *fiber.Ctx) error {
	tmpl, ok := render.Get(c.Params("name"))
	if !ok {
		return types.NotFound("Template not found")
	}

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.ValidationField("body", "The request body must be valid JSON.")
	}

	data := make(map[string]interface{}, len(body.Data))
	for key, raw := range body.Data {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return types.ValidationField("data", "The data field must map keys to JSON values.")
		}
		data[key] = value
	}

	return utils.SuccessResponse(c, fiber.Map{
		"template": tmpl.Name,
		"html":     render.Render(tmpl.HTML, data),
	}, fiber.StatusOK)
}
