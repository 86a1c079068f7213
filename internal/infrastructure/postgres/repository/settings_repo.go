package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/mappers"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

// GetInvoiceSettings returns nil without error when no settings row exists;
// the document renderer falls back to defaults.
func (r *DefaultSettingsRepository) GetInvoiceSettings() (*domain.InvoiceSettings, error) {
	var settings models.InvoiceSettingsModel
	if err := r.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainSettings(&settings), nil
}
