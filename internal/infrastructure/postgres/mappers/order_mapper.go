package mappers

import (
	"github.com/payquill/dpo-payment-service/internal/domain"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:            model.ID,
		CustomerID:    model.CustomerID,
		Currency:      model.Currency,
		Total:         model.Total,
		OrdersStatus:  model.OrdersStatus,
		PaymentMethod: model.PaymentMethod,

		CustomerFirstName: model.CustomerFirstName,
		CustomerLastName:  model.CustomerLastName,
		CustomerEmail:     model.CustomerEmail,
		CustomerPhone:     model.CustomerPhone,
		CustomerAddress:   model.CustomerAddress,
		CustomerCity:      model.CustomerCity,
		CustomerZip:       model.CustomerZip,
		CustomerCountry:   model.CustomerCountry,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToDomainTotalLine(model *models.OrderTotalModel) *domain.OrderTotalLine {
	return &domain.OrderTotalLine{
		ID:      model.ID,
		OrderID: model.OrderID,
		Class:   model.Class,
		Value:   model.Value,
		Text:    model.Text,
	}
}
