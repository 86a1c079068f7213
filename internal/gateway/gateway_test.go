package gateway

import (
	"errors"
	"testing"
	"time"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:           "6f1e8c1a-3a21-4c95-9b5d-0f4f0a2d9f11",
		OrderNumber:  "ART-10042",
		Subtotal:     1000,
		ShippingCost: 80,
		Total:        1080,
		Status:       domain.StatusPending,
		Address: &domain.Address{
			FullName:    "Rahim Uddin",
			Phone:       "01711000000",
			AddressLine: "House 12, Road 3",
			Thana:       "Dhanmondi",
			District:    "Dhaka",
			Division:    "Dhaka",
		},
	}
}

func testSession(order *domain.Order) *Session {
	return &Session{
		Order: order,
		Credentials: Credentials{
			StoreID:       "teststore",
			StorePassword: "testpass",
			SignatureKey:  "testsig",
		},
		Sandbox:     true,
		CallbackURL: "https://pay.artistiya.com/api/v1/payments/test/callback",
		PaymentRef:  "ref_abc123",
	}
}

func testClient() *Client {
	return NewClient(5 * time.Second)
}

func TestRegistryDispatch(t *testing.T) {
	client := testClient()
	registry := NewRegistry(
		NewBkashAdapter(client),
		NewNagadAdapter(client),
		NewSslcommerzAdapter(client),
		NewAamarpayAdapter(client),
		NewSurjopayAdapter(client),
	)

	for _, providerType := range []domain.ProviderType{
		domain.ProviderBkash,
		domain.ProviderNagad,
		domain.ProviderSslcommerz,
		domain.ProviderAamarpay,
		domain.ProviderSurjopay,
	} {
		adapter, err := registry.Get(providerType)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", providerType, err)
		}
		if adapter.Name() != providerType {
			t.Errorf("Get(%s).Name() = %s", providerType, adapter.Name())
		}
	}

	if _, err := registry.Get("paypal"); !errors.Is(err, domain.ErrProviderNotConfigured) {
		t.Errorf("Get(unknown) err = %v, want ErrProviderNotConfigured", err)
	}
}
