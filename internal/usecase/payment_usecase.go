package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/gateway"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/metrics"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/vault"
)

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, providerType domain.ProviderType, orderID, providerID string) (*gateway.InitResult, error)
	HandleCallback(ctx context.Context, providerType domain.ProviderType, action string, params map[string]string, rawPayload string) string
}

type DefaultPaymentUsecase struct {
	OrderRepo    domain.OrderRepository
	ProviderRepo domain.ProviderRepository
	CallbackLogs domain.CallbackLogRepository
	Registry     *gateway.Registry
	Vault        *vault.Vault
	Publisher    domain.PaymentPublisher
	Metrics      *metrics.PaymentMetrics
	Logger       *zap.Logger

	// AppURL is the storefront base for client redirects, PublicURL this
	// service's base for gateway callback URLs.
	AppURL    string
	PublicURL string

	newPaymentRef func() string
}

func NewDefaultPaymentUsecase(
	orderRepo domain.OrderRepository,
	providerRepo domain.ProviderRepository,
	callbackLogs domain.CallbackLogRepository,
	registry *gateway.Registry,
	credentialVault *vault.Vault,
	publisher domain.PaymentPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	logger *zap.Logger,
	appURL, publicURL string) *DefaultPaymentUsecase {

	refGen, err := nanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 16)
	if err != nil {
		log.Fatalf("failed to init payment ref generator: %v", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DefaultPaymentUsecase{
		OrderRepo:     orderRepo,
		ProviderRepo:  providerRepo,
		CallbackLogs:  callbackLogs,
		Registry:      registry,
		Vault:         credentialVault,
		Publisher:     publisher,
		Metrics:       paymentMetrics,
		Logger:        logger,
		AppURL:        appURL,
		PublicURL:     publicURL,
		newPaymentRef: refGen,
	}
}

// decryptCredentials resolves the provider's stored credentials through the
// vault. StoreID is plaintext by convention; the two secrets are encrypted
// at rest.
func (uc *DefaultPaymentUsecase) decryptCredentials(provider *domain.PaymentProvider) (gateway.Credentials, error) {
	fields := map[string]string{
		"store_password": provider.StorePassword,
		"signature_key":  provider.SignatureKey,
	}
	if err := uc.Vault.DecryptFields(fields, "store_password", "signature_key"); err != nil {
		return gateway.Credentials{}, fmt.Errorf("provider %s: %w", provider.ID, err)
	}
	return gateway.Credentials{
		StoreID:       provider.StoreID,
		StorePassword: fields["store_password"],
		SignatureKey:  fields["signature_key"],
	}, nil
}

func (uc *DefaultPaymentUsecase) callbackURL(providerType domain.ProviderType) string {
	return fmt.Sprintf("%s/api/v1/payments/%s/callback", uc.PublicURL, providerType)
}
