package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID                   string
	OrderNumber          string
	Subtotal             float64
	ShippingCost         float64
	Total                float64
	Status               OrderStatus
	PaymentMethod        string
	PaymentTransactionID string
	Address              *Address
	Items                []OrderItem
	CreatedAt            time.Time
}

type OrderItem struct {
	ID           string
	OrderID      string
	ProductName  string
	ProductPrice float64
	Quantity     int
}

// Address is the delivery address captured at checkout. Thana, district and
// division follow the Bangladesh administrative hierarchy.
type Address struct {
	ID          string
	FullName    string
	Phone       string
	AddressLine string
	Thana       string
	District    string
	Division    string
}
