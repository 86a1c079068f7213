package mappers

import (
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:                   model.ID,
		OrderNumber:          model.OrderNumber,
		Subtotal:             model.Subtotal,
		ShippingCost:         model.ShippingCost,
		Total:                model.Total,
		Status:               model.Status,
		PaymentMethod:        model.PaymentMethod,
		PaymentTransactionID: model.PaymentTransactionID,
		CreatedAt:            model.CreatedAt,
	}

	if model.Address.ID != "" {
		order.Address = &domain.Address{
			ID:          model.Address.ID,
			FullName:    model.Address.FullName,
			Phone:       model.Address.Phone,
			AddressLine: model.Address.AddressLine,
			Thana:       model.Address.Thana,
			District:    model.Address.District,
			Division:    model.Address.Division,
		}
	}

	for _, item := range model.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:           item.ID,
			OrderID:      item.OrderID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
		})
	}

	return order
}
