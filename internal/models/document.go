package models

import (
	"time"
)

// Document is the root of a composed PDF document tree. The cover, header and
// footer blobs are schema-less JSON produced by the client-side templates.
type Document struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Cover           JSON      `json:"cover"`
	Header          JSON      `json:"header"`
	Footer          JSON      `json:"footer"`
	BackgroundImage string    `gorm:"size:255" json:"background_image"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Pages       []Page       `gorm:"foreignKey:PdfID;constraint:OnDelete:CASCADE" json:"pages,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:PdfID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// Page is an ordered child of a Document. Siblings sort by Order ascending,
// CreatedAt descending for ties.
type Page struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PdfID     uint64    `gorm:"not null;index" json:"pdf_id"`
	Title     string    `gorm:"size:255" json:"title"`
	HasHeader bool      `gorm:"not null;default:false" json:"has_header"`
	HasFooter bool      `gorm:"not null;default:false" json:"has_footer"`
	Order     int       `gorm:"column:order_index;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sections []Section `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

// Section is an ordered child of a Page holding one opaque JSON payload
// produced by the template renderer.
type Section struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PageID    uint64    `gorm:"not null;index" json:"page_id"`
	Data      JSON      `json:"data"`
	Order     int       `gorm:"column:order_index;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "pdfs"
}

// TableName overrides the table name for Page
func (Page) TableName() string {
	return "pages"
}

// TableName overrides the table name for Section
func (Section) TableName() string {
	return "sections"
}
