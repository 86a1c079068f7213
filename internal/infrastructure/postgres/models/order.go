package models

import (
	"time"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

type OrderModel struct {
	ID                   string             `gorm:"primaryKey;type:uuid"`
	OrderNumber          string             `gorm:"uniqueIndex"`
	Subtotal             float64
	ShippingCost         float64
	Total                float64
	Status               domain.OrderStatus `gorm:"index:idx_status"`
	PaymentMethod        string
	PaymentTransactionID string
	AddressID            string             `gorm:"type:uuid"`
	Address              AddressModel       `gorm:"foreignKey:AddressID;references:ID"`
	Items                []OrderItemModel   `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt            time.Time          `gorm:"index:idx_created_at"`
	UpdatedAt            time.Time
}

type OrderItemModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	OrderID      string `gorm:"type:uuid;index"`
	ProductName  string
	ProductPrice float64
	Quantity     int
}

type AddressModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	FullName    string
	Phone       string
	AddressLine string
	Thana       string
	District    string
	Division    string
}
