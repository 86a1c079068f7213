package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

type DefaultCallbackLogRepository struct {
	DB *gorm.DB
}

func NewDefaultCallbackLogRepository(db *gorm.DB) *DefaultCallbackLogRepository {
	return &DefaultCallbackLogRepository{DB: db}
}

func (r *DefaultCallbackLogRepository) LogCallback(log *domain.CallbackLog) error {
	model := models.PaymentCallbackLog{
		ID:         uuid.New().String(),
		OrderID:    log.OrderID,
		Gateway:    log.Gateway,
		PaymentRef: log.PaymentRef,
		Status:     log.Status,
		Success:    log.Success,
		RawPayload: log.RawPayload,
		ReceivedAt: log.ReceivedAt,
	}
	return r.DB.Create(&model).Error
}
