package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/config"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.PaymentConfig) *gorm.DB {
	dsn := cfg.PaymentDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AddressModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PaymentProviderModel{},
		&models.InvoiceSettingsModel{},
		&models.PaymentCallbackLog{},
	)

	return db
}
