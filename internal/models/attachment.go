package models

import (
	"time"
)

// Attachment is a document-level file. The row and its on-disk blob are one
// unit: the services layer removes the blob when the row goes away.
type Attachment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PdfID     uint64    `gorm:"not null;index" json:"pdf_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Path      string    `gorm:"size:255;not null" json:"path"`
	Size      int64     `gorm:"not null;default:0" json:"size"`
	MimeType  string    `gorm:"size:127" json:"mime_type"`
	Order     int       `gorm:"column:order_index;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
