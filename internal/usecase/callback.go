package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/gateway"
)

// HandleCallback verifies a gateway callback server-to-server and
// reconciles the order on confirmed success. It always resolves to a
// client redirect: ambiguous or failed verification fails closed to the
// checkout error page, never to a confirmation.
func (uc *DefaultPaymentUsecase) HandleCallback(ctx context.Context, providerType domain.ProviderType, action string, params map[string]string, rawPayload string) string {
	adapter, err := uc.Registry.Get(providerType)
	if err != nil {
		return uc.failureRedirect("", "unknown_gateway")
	}

	provider, err := uc.ProviderRepo.GetActiveProvider(providerType)
	if err != nil {
		uc.Logger.Error("callback for unconfigured provider",
			zap.String("gateway", string(providerType)), zap.Error(err))
		return uc.failureRedirect("", "provider_not_configured")
	}

	credentials, err := uc.decryptCredentials(provider)
	if err != nil {
		uc.Logger.Error("failed to decrypt provider credentials on callback",
			zap.String("gateway", string(providerType)), zap.Error(err))
		return uc.failureRedirect("", "provider_not_configured")
	}

	start := time.Now()
	result, err := adapter.VerifyCallback(ctx, &gateway.CallbackRequest{
		Action:      action,
		Params:      params,
		Credentials: credentials,
		Sandbox:     provider.IsSandbox,
	})
	uc.Metrics.ObserveGatewayRequest(string(providerType), "verify", time.Since(start).Seconds())

	if err != nil {
		// Verification transport errors are indistinguishable from a
		// denied payment; treat the order as unconfirmed.
		uc.Logger.Error("callback verification failed",
			zap.String("gateway", string(providerType)),
			zap.String("action", action),
			zap.Error(err))
		uc.Metrics.RecordFailed(string(providerType), "verification_error")
		uc.logCallback(providerType, &gateway.CallbackResult{Status: gateway.CallbackFailed}, params, rawPayload)
		return uc.failureRedirect("", "verification_failed")
	}

	uc.logCallback(providerType, result, params, rawPayload)

	switch result.Status {
	case gateway.CallbackSuccess:
		return uc.reconcile(providerType, result)
	case gateway.CallbackCancelled:
		uc.Metrics.RecordFailed(string(providerType), "cancelled")
		uc.publishEvent(providerType, result, "cancelled")
		return uc.failureRedirect(result.OrderID, "payment_cancelled")
	default:
		uc.Metrics.RecordFailed(string(providerType), "failed")
		uc.publishEvent(providerType, result, "failed")
		return uc.failureRedirect(result.OrderID, "payment_failed")
	}
}

func (uc *DefaultPaymentUsecase) reconcile(providerType domain.ProviderType, result *gateway.CallbackResult) string {
	if result.OrderID == "" {
		uc.Logger.Error("verified callback without order correlation",
			zap.String("gateway", string(providerType)),
			zap.String("transaction_id", result.TransactionID))
		return uc.failureRedirect("", "order_not_found")
	}

	confirmed, err := uc.OrderRepo.ConfirmPayment(result.OrderID, result.TransactionID)
	if err != nil {
		uc.Logger.Error("order confirmation failed",
			zap.String("order_id", result.OrderID), zap.Error(err))
		return uc.failureRedirect(result.OrderID, "reconciliation_error")
	}

	if !confirmed {
		// Zero rows: the order already left pending. A redelivery of the
		// same confirmed outcome is a no-op success for the client.
		order, err := uc.OrderRepo.GetOrderByID(result.OrderID)
		if err != nil {
			return uc.failureRedirect(result.OrderID, "order_not_found")
		}
		if order.Status == domain.StatusConfirmed {
			if order.PaymentTransactionID != result.TransactionID {
				uc.Logger.Warn("duplicate callback with conflicting transaction id",
					zap.String("order_id", result.OrderID),
					zap.String("stored", order.PaymentTransactionID),
					zap.String("received", result.TransactionID))
			}
			uc.Metrics.RecordDuplicate(string(providerType))
			return uc.successRedirect(result.OrderID)
		}
		uc.Logger.Warn("verified payment for non-pending order",
			zap.String("order_id", result.OrderID),
			zap.String("status", string(order.Status)))
		return uc.failureRedirect(result.OrderID, "order_not_pending")
	}

	uc.Metrics.RecordConfirmed(string(providerType), result.Amount)
	uc.publishEvent(providerType, result, "confirmed")
	uc.Logger.Info("payment confirmed",
		zap.String("gateway", string(providerType)),
		zap.String("order_id", result.OrderID),
		zap.String("transaction_id", result.TransactionID))

	return uc.successRedirect(result.OrderID)
}

func (uc *DefaultPaymentUsecase) publishEvent(providerType domain.ProviderType, result *gateway.CallbackResult, status string) {
	if uc.Publisher == nil {
		return
	}
	var orderNumber string
	if result.OrderID != "" {
		if order, err := uc.OrderRepo.GetOrderByID(result.OrderID); err == nil {
			orderNumber = order.OrderNumber
		}
	}
	event := domain.PaymentEvent{
		OrderID:       result.OrderID,
		OrderNumber:   orderNumber,
		Gateway:       providerType,
		Status:        status,
		Amount:        result.Amount,
		TransactionID: result.TransactionID,
		Timestamp:     time.Now(),
	}
	go func() {
		if err := uc.Publisher.PublishPayment(event); err != nil {
			uc.Logger.Error("failed to publish payment event",
				zap.String("order_id", event.OrderID), zap.Error(err))
		}
	}()
}

func (uc *DefaultPaymentUsecase) logCallback(providerType domain.ProviderType, result *gateway.CallbackResult, params map[string]string, rawPayload string) {
	if uc.CallbackLogs == nil {
		return
	}
	paymentRef := params["paymentID"]
	if paymentRef == "" {
		paymentRef = params["val_id"]
	}
	if paymentRef == "" {
		paymentRef = params["mer_txnid"]
	}
	if paymentRef == "" {
		paymentRef = params["order_id"]
	}
	err := uc.CallbackLogs.LogCallback(&domain.CallbackLog{
		OrderID:    result.OrderID,
		Gateway:    providerType,
		PaymentRef: paymentRef,
		Status:     string(result.Status),
		Success:    result.Status == gateway.CallbackSuccess,
		RawPayload: rawPayload,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		uc.Logger.Error("failed to record callback log", zap.Error(err))
	}
}

func (uc *DefaultPaymentUsecase) successRedirect(orderID string) string {
	return fmt.Sprintf("%s/order-success?orderId=%s", uc.AppURL, url.QueryEscape(orderID))
}

func (uc *DefaultPaymentUsecase) failureRedirect(orderID, reason string) string {
	redirect := fmt.Sprintf("%s/checkout?error=%s", uc.AppURL, url.QueryEscape(reason))
	if orderID != "" {
		redirect += "&orderId=" + url.QueryEscape(orderID)
	}
	return redirect
}
