package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProviderNotConfigured = errors.New("payment provider is not configured")
	ErrOrderNotFound         = errors.New("order not found")
	ErrProviderNotFound      = errors.New("payment provider not found")
	ErrDecryptionFailure     = errors.New("credential decryption failed")
	ErrUnauthorized          = errors.New("missing or invalid bearer token")
	ErrForbidden             = errors.New("caller is not an admin")
)

// GatewayError is a non-success response from a provider's own API.
// The provider-reported reason is surfaced to the caller when available.
type GatewayError struct {
	Gateway ProviderType
	Reason  string
}

func (e *GatewayError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s gateway request failed", e.Gateway)
	}
	return fmt.Sprintf("%s gateway: %s", e.Gateway, e.Reason)
}

func NewGatewayError(gateway ProviderType, reason string) *GatewayError {
	return &GatewayError{Gateway: gateway, Reason: reason}
}
