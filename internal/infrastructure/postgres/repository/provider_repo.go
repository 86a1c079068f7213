package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/mappers"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

type DefaultProviderRepository struct {
	DB *gorm.DB
}

func NewDefaultProviderRepository(db *gorm.DB) *DefaultProviderRepository {
	return &DefaultProviderRepository{DB: db}
}

func (r *DefaultProviderRepository) GetProviderByID(providerID string) (*domain.PaymentProvider, error) {
	var provider models.PaymentProviderModel
	if err := r.DB.First(&provider, "id = ?", providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProvider(&provider), nil
}

func (r *DefaultProviderRepository) GetActiveProvider(providerType domain.ProviderType) (*domain.PaymentProvider, error) {
	var provider models.PaymentProviderModel
	err := r.DB.First(&provider, "provider_type = ? AND is_active = ?", providerType, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotConfigured
		}
		return nil, err
	}
	return mappers.ToDomainProvider(&provider), nil
}
