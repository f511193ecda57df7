package repository

import (
	"context"
	"errors"

	"github.com/payquill/dpo-payment-service/internal/domain"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCurrencyRepository struct {
	DB *gorm.DB
}

func NewDefaultCurrencyRepository(db *gorm.DB) *DefaultCurrencyRepository {
	return &DefaultCurrencyRepository{DB: db}
}

func (r *DefaultCurrencyRepository) GetByCode(ctx context.Context, code string) (*domain.Currency, error) {
	var currency models.CurrencyModel
	if err := r.DB.WithContext(ctx).First(&currency, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCurrencyNotFound
		}
		return nil, err
	}

	return mappers.ToDomainCurrency(&currency), nil
}
