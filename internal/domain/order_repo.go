package domain

type OrderRepository interface {
	GetOrderByID(orderID string) (*Order, error)
	// ConfirmPayment moves the order from pending to confirmed and records
	// the gateway transaction id. The update is guarded by the current
	// status; it reports false when no row transitioned (already
	// reconciled or unknown order).
	ConfirmPayment(orderID, transactionID string) (bool, error)
}

type ProviderRepository interface {
	GetProviderByID(providerID string) (*PaymentProvider, error)
	GetActiveProvider(providerType ProviderType) (*PaymentProvider, error)
}

type SettingsRepository interface {
	GetInvoiceSettings() (*InvoiceSettings, error)
}
