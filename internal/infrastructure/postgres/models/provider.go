package models

import (
	"time"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

type PaymentProviderModel struct {
	ID            string              `gorm:"primaryKey;type:uuid"`
	ProviderType  domain.ProviderType `gorm:"index:idx_provider_type"`
	IsActive      bool
	IsSandbox     bool
	StoreID       string
	// StorePassword and SignatureKey are stored vault-encrypted.
	StorePassword string
	SignatureKey  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type InvoiceSettingsModel struct {
	ID             uint `gorm:"primaryKey"`
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	LogoURL        string
	FooterNote     string
	UpdatedAt      time.Time
}

// PaymentCallbackLog records every callback delivery for audit, including
// redeliveries and failed verifications.
type PaymentCallbackLog struct {
	ID         string              `gorm:"primaryKey;type:uuid"`
	OrderID    string              `gorm:"index"`
	Gateway    domain.ProviderType `gorm:"index"`
	PaymentRef string
	Status     string
	Success    bool
	RawPayload string    `gorm:"type:jsonb"`
	ReceivedAt time.Time `gorm:"not null"`
}
