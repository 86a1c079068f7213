package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/mappers"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	err := r.DB.Preload("Address").Preload("Items").
		First(&order, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

// ConfirmPayment is a guarded compare-and-swap: only a pending order
// transitions, so duplicate callback deliveries collapse into a zero-row
// no-op instead of overwriting a settled order.
func (r *DefaultOrderRepository) ConfirmPayment(orderID, transactionID string) (bool, error) {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.StatusPending).
		Updates(map[string]any{
			"status":                 domain.StatusConfirmed,
			"payment_transaction_id": transactionID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
