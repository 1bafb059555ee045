package services

import (
	"errors"
	"io"
	"log"

	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/storage"
	"github.com/proforge/profilepdf/internal/types"
	"gorm.io/gorm"
)

// AttachmentUpload describes an incoming multipart file for a document.
type AttachmentUpload struct {
	PdfID    uint64
	Name     string
	MimeType string
	Order    *int
	File     io.Reader
}

// AttachmentUpdate is the partial update payload for an attachment row.
type AttachmentUpdate struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Order *int    `json:"order"`
}

// CreateAttachment stores the uploaded blob and inserts its row. The blob is
// written first under a generated name; if the row insert fails the blob is
// removed again so no file exists without a row.
func CreateAttachment(db *gorm.DB, store *storage.Store, up AttachmentUpload) (*models.Attachment, error) {
	if up.Name == "" {
		return nil, types.ValidationField("file", "The file field is required.")
	}
	if len(up.Name) > 255 {
		return nil, types.ValidationField("file", "The file name may not be greater than 255 characters.")
	}

	var attachment models.Attachment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Document{}, up.PdfID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Document not found")
			}
			return err
		}

		order := 0
		if up.Order != nil {
			order = *up.Order
		} else {
			next, err := nextOrder(tx, "attachments", "pdf_id", up.PdfID)
			if err != nil {
				return err
			}
			order = next
		}

		storedName, size, err := store.Save(up.File, up.Name)
		if err != nil {
			return err
		}

		attachment = models.Attachment{
			PdfID:    up.PdfID,
			Name:     up.Name,
			Path:     storedName,
			Size:     size,
			MimeType: up.MimeType,
			Order:    order,
		}
		if err := tx.Create(&attachment).Error; err != nil {
			if rmErr := store.Remove(storedName); rmErr != nil {
				log.Printf("Failed to remove orphaned attachment file %s: %v", storedName, rmErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListAttachments returns attachments, optionally scoped to one document, in
// sibling order.
func ListAttachments(db *gorm.DB, pdfID *uint64) ([]models.Attachment, error) {
	query := db.Model(&models.Attachment{})
	if pdfID != nil {
		query = withIndexHint(query, "idx_attachments_pdf_id").Where("pdf_id = ?", *pdfID)
	}

	var attachments []models.Attachment
	if err := query.Order(siblingSort).Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// GetAttachment returns one attachment row.
func GetAttachment(db *gorm.DB, id uint64) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := db.First(&attachment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Attachment not found")
		}
		return nil, err
	}
	return &attachment, nil
}

// UpdateAttachment applies a partial update to an attachment row. The stored
// blob is immutable; only name and order change.
func UpdateAttachment(db *gorm.DB, id uint64, up AttachmentUpdate) (*models.Attachment, error) {
	if appErr := validateStruct(up); appErr != nil {
		return nil, appErr
	}

	var attachment models.Attachment
	if err := db.First(&attachment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Attachment not found")
		}
		return nil, err
	}

	if up.Name != nil {
		attachment.Name = *up.Name
	}
	if up.Order != nil {
		attachment.Order = *up.Order
	}

	if err := db.Save(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteAttachment removes the row, then the backing file. File removal is
// best-effort: a storage failure is logged but never blocks the row delete.
func DeleteAttachment(db *gorm.DB, store *storage.Store, id uint64) error {
	var attachment models.Attachment
	if err := db.First(&attachment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Attachment not found")
		}
		return err
	}

	if err := db.Delete(&attachment).Error; err != nil {
		return err
	}

	if err := store.Remove(attachment.Path); err != nil {
		log.Printf("Failed to remove attachment file %s: %v", attachment.Path, err)
	}
	return nil
}

// ReorderAttachments rewrites the order of the attachments of one document to
// match ids.
func ReorderAttachments(db *gorm.DB, pdfID uint64, ids []uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return reorderRows(tx, "attachments", "pdf_id", pdfID, ids)
	})
}
