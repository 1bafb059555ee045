package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/proforge/profilepdf/internal/types"
)

// parseID reads the :id path parameter. Non-numeric ids behave like missing
// rows.
func parseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, types.NotFound("Resource not found")
	}
	return id, nil
}

// parentFilter reads an optional parent-id query parameter, e.g. ?pdf_id=3.
func parentFilter(c *fiber.Ctx, name string) (*uint64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, types.ValidationField(name, "The "+name+" parameter must be an integer.")
	}
	return &id, nil
}

// reorderRequest is the shared shape of the per-entity reorder payloads. The
// parent field names the sibling group; Ids is the explicit new ordering.
type reorderRequest struct {
	PdfID  types.FlexUint64                 `json:"pdf_id"`
	PageID types.FlexUint64                 `json:"page_id"`
	Ids    types.FlexList[types.FlexUint64] `json:"ids"`
}
