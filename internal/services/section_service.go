package services

import (
	"encoding/json"
	"errors"

	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/types"
	"gorm.io/gorm"
)

// SectionInput is the create payload for a section. Data is the opaque JSON
// blob produced by a client-side template.
type SectionInput struct {
	PageID types.FlexUint64 `json:"page_id" validate:"required"`
	Data   json.RawMessage  `json:"data" validate:"required"`
	Order  *int             `json:"order"`
}

// SectionUpdate is the partial update payload for a section.
type SectionUpdate struct {
	Data  json.RawMessage `json:"data"`
	Order *int            `json:"order"`
}

// CreateSection validates the parent page and inserts a section row.
func CreateSection(db *gorm.DB, in SectionInput) (*models.Section, error) {
	if appErr := validateStruct(in); appErr != nil {
		return nil, appErr
	}

	var section models.Section
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Page{}, in.PageID.Uint64()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Page not found")
			}
			return err
		}

		order := 0
		if in.Order != nil {
			order = *in.Order
		} else {
			next, err := nextOrder(tx, "sections", "page_id", in.PageID.Uint64())
			if err != nil {
				return err
			}
			order = next
		}

		section = models.Section{
			PageID: in.PageID.Uint64(),
			Data:   jsonColumn(in.Data),
			Order:  order,
		}
		return tx.Create(&section).Error
	})
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// ListSections returns sections, optionally scoped to one page, in sibling
// order.
func ListSections(db *gorm.DB, pageID *uint64) ([]models.Section, error) {
	query := db.Model(&models.Section{})
	if pageID != nil {
		query = withIndexHint(query, "idx_sections_page_id").Where("page_id = ?", *pageID)
	}

	var sections []models.Section
	if err := query.Order(siblingSort).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSection returns one section row.
func GetSection(db *gorm.DB, id uint64) (*models.Section, error) {
	var section models.Section
	if err := db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Section not found")
		}
		return nil, err
	}
	return &section, nil
}

// UpdateSection applies a partial update to a section row.
func UpdateSection(db *gorm.DB, id uint64, up SectionUpdate) (*models.Section, error) {
	if appErr := validateStruct(up); appErr != nil {
		return nil, appErr
	}

	var section models.Section
	if err := db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Section not found")
		}
		return nil, err
	}

	if up.Data != nil {
		section.Data = jsonColumn(up.Data)
	}
	if up.Order != nil {
		section.Order = *up.Order
	}

	if err := db.Save(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection removes a section row.
func DeleteSection(db *gorm.DB, id uint64) error {
	var section models.Section
	if err := db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Section not found")
		}
		return err
	}
	return db.Delete(&section).Error
}

// ReorderSections rewrites the order of the sections of one page to match ids.
func ReorderSections(db *gorm.DB, pageID uint64, ids []uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return reorderRows(tx, "sections", "page_id", pageID, ids)
	})
}
