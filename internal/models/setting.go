package models

import (
	"time"
)

// Setting holds flat company info used on document covers and footers. It is
// independent of the document tree; in practice there is one row.
type Setting struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:63" json:"phone"`
	Address     string    `gorm:"size:255" json:"address"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
