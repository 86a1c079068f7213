package domain

type ProviderType string

const (
	ProviderBkash      ProviderType = "bkash"
	ProviderNagad      ProviderType = "nagad"
	ProviderSslcommerz ProviderType = "sslcommerz"
	ProviderAamarpay   ProviderType = "aamarpay"
	ProviderSurjopay   ProviderType = "surjopay"
)

// PaymentProvider holds one gateway configuration per environment.
// StorePassword and SignatureKey are stored encrypted ("enc:" prefixed)
// and must be decrypted through the vault before use.
type PaymentProvider struct {
	ID            string
	ProviderType  ProviderType
	IsActive      bool
	IsSandbox     bool
	StoreID       string
	StorePassword string
	SignatureKey  string
}
