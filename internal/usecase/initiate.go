package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/gateway"
)

// InitiatePayment opens a hosted-checkout session with the requested
// provider and returns its redirect URL. The order row is not touched:
// it stays pending until a verified callback arrives.
func (uc *DefaultPaymentUsecase) InitiatePayment(ctx context.Context, providerType domain.ProviderType, orderID, providerID string) (*gateway.InitResult, error) {
	provider, err := uc.ProviderRepo.GetProviderByID(providerID)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			return nil, domain.ErrProviderNotConfigured
		}
		return nil, err
	}
	if !provider.IsActive || provider.ProviderType != providerType {
		return nil, domain.ErrProviderNotConfigured
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	credentials, err := uc.decryptCredentials(provider)
	if err != nil {
		uc.Logger.Error("failed to decrypt provider credentials",
			zap.String("provider_id", provider.ID), zap.Error(err))
		return nil, domain.ErrProviderNotConfigured
	}

	adapter, err := uc.Registry.Get(providerType)
	if err != nil {
		return nil, err
	}

	session := &gateway.Session{
		Order:       order,
		Credentials: credentials,
		Sandbox:     provider.IsSandbox,
		CallbackURL: uc.callbackURL(providerType),
		PaymentRef:  uc.newPaymentRef(),
	}

	start := time.Now()
	result, err := adapter.CreatePayment(ctx, session)
	uc.Metrics.ObserveGatewayRequest(string(providerType), "init", time.Since(start).Seconds())
	if err != nil {
		uc.Logger.Error("payment initiation failed",
			zap.String("gateway", string(providerType)),
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, err
	}

	uc.Metrics.RecordInitiated(string(providerType))
	uc.Logger.Info("payment initiated",
		zap.String("gateway", string(providerType)),
		zap.String("order_id", orderID),
		zap.String("payment_ref", result.PaymentRef))

	return result, nil
}
