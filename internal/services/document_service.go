package services

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/storage"
	"github.com/proforge/profilepdf/internal/types"
	"gorm.io/gorm"
)

// DocumentInput is the create payload for a document.
type DocumentInput struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Cover           json.RawMessage `json:"cover"`
	Header          json.RawMessage `json:"header"`
	Footer          json.RawMessage `json:"footer"`
	BackgroundImage string          `json:"background_image" validate:"omitempty,max=255"`
}

// DocumentUpdate is the partial update payload; only supplied fields are
// validated and applied.
type DocumentUpdate struct {
	Name            *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Cover           json.RawMessage `json:"cover"`
	Header          json.RawMessage `json:"header"`
	Footer          json.RawMessage `json:"footer"`
	BackgroundImage *string         `json:"background_image" validate:"omitempty,max=255"`
}

// CreateDocument validates the input and inserts a document row.
func CreateDocument(db *gorm.DB, in DocumentInput) (*models.Document, error) {
	if appErr := validateStruct(in); appErr != nil {
		return nil, appErr
	}

	doc := models.Document{
		Name:            in.Name,
		Cover:           jsonColumn(in.Cover),
		Header:          jsonColumn(in.Header),
		Footer:          jsonColumn(in.Footer),
		BackgroundImage: in.BackgroundImage,
	}
	if err := db.Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments returns all documents, newest first.
func ListDocuments(db *gorm.DB) ([]models.Document, error) {
	var docs []models.Document
	if err := db.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument returns one document with its full ordered tree.
func GetDocument(db *gorm.DB, id uint64) (*models.Document, error) {
	var doc models.Document
	err := db.
		Preload("Pages", func(db *gorm.DB) *gorm.DB { return db.Order(siblingSort) }).
		Preload("Pages.Sections", func(db *gorm.DB) *gorm.DB { return db.Order(siblingSort) }).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order(siblingSort) }).
		First(&doc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// UpdateDocument applies a partial update to a document row.
func UpdateDocument(db *gorm.DB, id uint64, up DocumentUpdate) (*models.Document, error) {
	if appErr := validateStruct(up); appErr != nil {
		return nil, appErr
	}

	var doc models.Document
	if err := db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Document not found")
		}
		return nil, err
	}

	if up.Name != nil {
		doc.Name = *up.Name
	}
	if up.Cover != nil {
		doc.Cover = jsonColumn(up.Cover)
	}
	if up.Header != nil {
		doc.Header = jsonColumn(up.Header)
	}
	if up.Footer != nil {
		doc.Footer = jsonColumn(up.Footer)
	}
	if up.BackgroundImage != nil {
		doc.BackgroundImage = *up.BackgroundImage
	}

	if err := db.Save(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a document and its whole subtree in one transaction:
// sections of its pages, the pages, the document attachments, then the row.
// Attachment blobs are removed from disk after the transaction commits,
// best-effort.
func DeleteDocument(db *gorm.DB, store *storage.Store, id uint64) error {
	var orphanedFiles []string

	err := db.Transaction(func(tx *gorm.DB) error {
		var doc models.Document
		if err := tx.First(&doc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Document not found")
			}
			return err
		}

		var attachments []models.Attachment
		if err := tx.Where("pdf_id = ?", id).Find(&attachments).Error; err != nil {
			return err
		}
		for _, a := range attachments {
			orphanedFiles = append(orphanedFiles, a.Path)
		}

		pageIDs := tx.Model(&models.Page{}).Select("id").Where("pdf_id = ?", id)
		if err := tx.Where("page_id IN (?)", pageIDs).Delete(&models.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pdf_id = ?", id).Delete(&models.Page{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pdf_id = ?", id).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&doc).Error
	})
	if err != nil {
		return err
	}

	for _, path := range orphanedFiles {
		if err := store.Remove(path); err != nil {
			log.Printf("Failed to remove attachment file %s: %v", path, err)
		}
	}
	return nil
}

// jsonColumn converts a raw JSON body field into the column type. BodyParser
// has already proven the bytes are valid JSON.
func jsonColumn(raw json.RawMessage) models.JSON {
	var col models.JSON
	if len(raw) > 0 {
		col.JSON = []byte(raw)
	}
	return col
}
