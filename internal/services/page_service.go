package services

import (
	"errors"

	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/types"
	"gorm.io/gorm"
)

// PageInput is the create payload for a page.
type PageInput struct {
	PdfID     types.FlexUint64 `json:"pdf_id" validate:"required"`
	Title     string           `json:"title" validate:"omitempty,max=255"`
	HasHeader bool             `json:"has_header"`
	HasFooter bool             `json:"has_footer"`
	Order     *int             `json:"order"`
}

// PageUpdate is the partial update payload for a page.
type PageUpdate struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	HasHeader *bool   `json:"has_header"`
	HasFooter *bool   `json:"has_footer"`
	Order     *int    `json:"order"`
}

// CreatePage validates the parent document and inserts a page row. A missing
// order defaults to end-of-list.
func CreatePage(db *gorm.DB, in PageInput) (*models.Page, error) {
	if appErr := validateStruct(in); appErr != nil {
		return nil, appErr
	}

	var page models.Page
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Document{}, in.PdfID.Uint64()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Document not found")
			}
			return err
		}

		order := 0
		if in.Order != nil {
			order = *in.Order
		} else {
			next, err := nextOrder(tx, "pages", "pdf_id", in.PdfID.Uint64())
			if err != nil {
				return err
			}
			order = next
		}

		page = models.Page{
			PdfID:     in.PdfID.Uint64(),
			Title:     in.Title,
			HasHeader: in.HasHeader,
			HasFooter: in.HasFooter,
			Order:     order,
		}
		return tx.Create(&page).Error
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ListPages returns pages, optionally scoped to one document, in sibling
// order.
func ListPages(db *gorm.DB, pdfID *uint64) ([]models.Page, error) {
	query := db.Model(&models.Page{})
	if pdfID != nil {
		query = withIndexHint(query, "idx_pages_pdf_id").Where("pdf_id = ?", *pdfID)
	}

	var pages []models.Page
	if err := query.Order(siblingSort).Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPage returns one page with its ordered sections.
func GetPage(db *gorm.DB, id uint64) (*models.Page, error) {
	var page models.Page
	err := db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order(siblingSort) }).
		First(&page, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Page not found")
		}
		return nil, err
	}
	return &page, nil
}

// UpdatePage applies a partial update to a page row.
func UpdatePage(db *gorm.DB, id uint64, up PageUpdate) (*models.Page, error) {
	if appErr := validateStruct(up); appErr != nil {
		return nil, appErr
	}

	var page models.Page
	if err := db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Page not found")
		}
		return nil, err
	}

	if up.Title != nil {
		page.Title = *up.Title
	}
	if up.HasHeader != nil {
		page.HasHeader = *up.HasHeader
	}
	if up.HasFooter != nil {
		page.HasFooter = *up.HasFooter
	}
	if up.Order != nil {
		page.Order = *up.Order
	}

	if err := db.Save(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// DeletePage removes a page and its sections in one transaction.
func DeletePage(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var page models.Page
		if err := tx.First(&page, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Page not found")
			}
			return err
		}

		if err := tx.Where("page_id = ?", id).Delete(&models.Section{}).Error; err != nil {
			return err
		}
		return tx.Delete(&page).Error
	})
}

// ReorderPages rewrites the order of the pages of one document to match ids.
func ReorderPages(db *gorm.DB, pdfID uint64, ids []uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return reorderRows(tx, "pages", "pdf_id", pdfID, ids)
	})
}
