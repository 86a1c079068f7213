// Package gateway integrates the hosted-checkout payment providers used by
// the storefront. Every provider implements the same Adapter contract:
// create a payment session yielding a redirect URL, then verify the
// callback server-to-server before the order is reconciled.
package gateway

import (
	"context"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// Credentials are the decrypted store credentials for one provider row.
// Field meaning varies per gateway (bKash: app key / app secret / token
// password, shurjoPay: username / password, SSLCommerz: store id / store
// password).
type Credentials struct {
	StoreID       string
	StorePassword string
	SignatureKey  string
}

// Session carries everything an adapter needs to open a payment with a
// provider. PaymentRef is a fresh per-init reference; gateways that need a
// unique invoice number get order number + ref.
type Session struct {
	Order       *domain.Order
	Credentials Credentials
	Sandbox     bool
	// CallbackURL is this service's callback endpoint for the gateway,
	// already including the gateway path segment.
	CallbackURL string
	PaymentRef  string
}

// InitResult is the normalized outcome of a create-payment call. The
// provider-specific redirect field (bkashURL, GatewayPageURL, payment_url,
// checkout_url, ...) is always surfaced as RedirectURL.
type InitResult struct {
	RedirectURL string
	PaymentRef  string
}

type CallbackStatus string

const (
	CallbackSuccess   CallbackStatus = "success"
	CallbackFailed    CallbackStatus = "failed"
	CallbackCancelled CallbackStatus = "cancelled"
)

// CallbackRequest is a callback delivery (return redirect or IPN) with the
// query and form parameters merged. Credentials are needed because every
// adapter re-verifies the transaction against the provider before trusting
// the reported status.
type CallbackRequest struct {
	Action      string
	Params      map[string]string
	Credentials Credentials
	Sandbox     bool
}

// CallbackResult is the verified outcome of a callback. OrderID is the
// application order id recovered from the provider's passthrough field,
// TransactionID the provider's own transaction reference.
type CallbackResult struct {
	OrderID       string
	TransactionID string
	Status        CallbackStatus
	Amount        float64
}

type Adapter interface {
	Name() domain.ProviderType
	CreatePayment(ctx context.Context, session *Session) (*InitResult, error)
	VerifyCallback(ctx context.Context, req *CallbackRequest) (*CallbackResult, error)
}

// Registry dispatches to the adapter for a provider type.
type Registry struct {
	adapters map[domain.ProviderType]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[domain.ProviderType]Adapter, len(adapters))}
	for _, adapter := range adapters {
		r.adapters[adapter.Name()] = adapter
	}
	return r
}

func (r *Registry) Get(providerType domain.ProviderType) (Adapter, error) {
	adapter, ok := r.adapters[providerType]
	if !ok {
		return nil, domain.ErrProviderNotConfigured
	}
	return adapter, nil
}
