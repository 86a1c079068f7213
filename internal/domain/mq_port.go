package domain

import "time"

type PaymentEvent struct {
	OrderID       string       `json:"order_id"`
	OrderNumber   string       `json:"order_number"`
	Gateway       ProviderType `json:"gateway"`
	Status        string       `json:"status"`
	Amount        float64      `json:"amount"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
}

type PaymentPublisher interface {
	PublishPayment(event PaymentEvent) error
}
