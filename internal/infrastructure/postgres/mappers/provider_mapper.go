package mappers

import (
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

func ToDomainProvider(model *models.PaymentProviderModel) *domain.PaymentProvider {
	return &domain.PaymentProvider{
		ID:            model.ID,
		ProviderType:  model.ProviderType,
		IsActive:      model.IsActive,
		IsSandbox:     model.IsSandbox,
		StoreID:       model.StoreID,
		StorePassword: model.StorePassword,
		SignatureKey:  model.SignatureKey,
	}
}

func ToDomainSettings(model *models.InvoiceSettingsModel) *domain.InvoiceSettings {
	return &domain.InvoiceSettings{
		CompanyName:    model.CompanyName,
		CompanyAddress: model.CompanyAddress,
		CompanyPhone:   model.CompanyPhone,
		CompanyEmail:   model.CompanyEmail,
		LogoURL:        model.LogoURL,
		FooterNote:     model.FooterNote,
	}
}
