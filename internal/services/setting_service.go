package services

import (
	"errors"

	"github.com/proforge/profilepdf/internal/models"
	"github.com/proforge/profilepdf/internal/types"
	"gorm.io/gorm"
)

// SettingInput is the create payload for the company settings row.
type SettingInput struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=63"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	Description string `json:"description"`
}

// SettingUpdate is the partial update payload for a settings row.
type SettingUpdate struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=63"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Description *string `json:"description"`
}

// CreateSetting inserts a settings row.
func CreateSetting(db *gorm.DB, in SettingInput) (*models.Setting, error) {
	if appErr := validateStruct(in); appErr != nil {
		return nil, appErr
	}

	setting := models.Setting{
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Description: in.Description,
	}
	if err := db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// ListSettings returns all settings rows. In practice there is one.
func ListSettings(db *gorm.DB) ([]models.Setting, error) {
	var settings []models.Setting
	if err := db.Order("id ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// GetSetting returns one settings row.
func GetSetting(db *gorm.DB, id uint64) (*models.Setting, error) {
	var setting models.Setting
	if err := db.First(&setting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Setting not found")
		}
		return nil, err
	}
	return &setting, nil
}

// UpdateSetting applies a partial update to a settings row.
func UpdateSetting(db *gorm.DB, id uint64, up SettingUpdate) (*models.Setting, error) {
	if appErr := validateStruct(up); appErr != nil {
		return nil, appErr
	}

	var setting models.Setting
	if err := db.First(&setting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Setting not found")
		}
		return nil, err
	}

	if up.CompanyName != nil {
		setting.CompanyName = *up.CompanyName
	}
	if up.Email != nil {
		setting.Email = *up.Email
	}
	if up.Phone != nil {
		setting.Phone = *up.Phone
	}
	if up.Address != nil {
		setting.Address = *up.Address
	}
	if up.Description != nil {
		setting.Description = *up.Description
	}

	if err := db.Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
