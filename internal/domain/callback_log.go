package domain

import "time"

// CallbackLog is an audit record of every callback delivery received from a
// gateway, including redeliveries and failed verifications.
type CallbackLog struct {
	ID         string
	OrderID    string
	Gateway    ProviderType
	PaymentRef string
	Status     string
	Success    bool
	RawPayload string
	ReceivedAt time.Time
}

type CallbackLogRepository interface {
	LogCallback(log *CallbackLog) error
}
