package mappers

import (
	"github.com/payquill/dpo-payment-service/internal/domain"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentRecord(model *models.OrderPaymentModel) *domain.OrderPaymentRecord {
	return &domain.OrderPaymentRecord{
		ID:             model.ID,
		OrderID:        model.OrderID,
		Amount:         model.Amount,
		Currency:       model.Currency,
		Module:         model.Module,
		ModuleName:     model.ModuleName,
		TransactionRef: model.TransactionRef,
		Status:         model.Status,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToDomainCurrency(model *models.CurrencyModel) *domain.Currency {
	return &domain.Currency{
		Code:           model.Code,
		SymbolLeft:     model.SymbolLeft,
		SymbolRight:    model.SymbolRight,
		DecimalPlaces:  model.DecimalPlaces,
		DecimalPoint:   model.DecimalPoint,
		ThousandsPoint: model.ThousandsPoint,
	}
}
