package usecase

import (
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/documents"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

type DocumentUsecase interface {
	GenerateInvoice(orderID string) (html, orderNumber string, err error)
	GenerateDeliverySlip(orderID string) (html, orderNumber string, err error)
}

type DefaultDocumentUsecase struct {
	OrderRepo    domain.OrderRepository
	SettingsRepo domain.SettingsRepository
	Logger       *zap.Logger
}

func NewDefaultDocumentUsecase(orderRepo domain.OrderRepository, settingsRepo domain.SettingsRepository, logger *zap.Logger) *DefaultDocumentUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDocumentUsecase{
		OrderRepo:    orderRepo,
		SettingsRepo: settingsRepo,
		Logger:       logger,
	}
}

func (uc *DefaultDocumentUsecase) GenerateInvoice(orderID string) (string, string, error) {
	order, settings, err := uc.load(orderID)
	if err != nil {
		return "", "", err
	}
	html, err := documents.RenderInvoice(order, settings)
	if err != nil {
		return "", "", err
	}
	return html, order.OrderNumber, nil
}

func (uc *DefaultDocumentUsecase) GenerateDeliverySlip(orderID string) (string, string, error) {
	order, settings, err := uc.load(orderID)
	if err != nil {
		return "", "", err
	}
	html, err := documents.RenderDeliverySlip(order, settings)
	if err != nil {
		return "", "", err
	}
	return html, order.OrderNumber, nil
}

func (uc *DefaultDocumentUsecase) load(orderID string) (*domain.Order, *domain.InvoiceSettings, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, nil, err
	}

	settings, err := uc.SettingsRepo.GetInvoiceSettings()
	if err != nil {
		// Letterhead is cosmetic; fall back to defaults rather than
		// failing the document.
		uc.Logger.Warn("failed to load invoice settings, using defaults", zap.Error(err))
		settings = nil
	}
	return order, settings, nil
}
