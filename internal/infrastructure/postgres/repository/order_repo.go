package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/payquill/dpo-payment-service/internal/domain"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"orders_status": newStatus,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// ApplySettlement performs the whole paid transition in one transaction.
// The row lock on the order serializes duplicate gateway deliveries: the
// second delivery sees the settled payment record and returns applied=false
// without touching any financial row.
func (r *DefaultOrderRepository) ApplySettlement(ctx context.Context, s *domain.Settlement) (bool, error) {
	applied := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.OrderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", s.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		now := time.Now()

		var payment models.OrderPaymentModel
		err := tx.First(&payment, "order_id = ?", s.OrderID).Error
		switch {
		case err == nil:
			if payment.Status == domain.PaymentStatusSettled && payment.TransactionRef == s.TransactionRef {
				// Duplicate delivery of an already settled callback.
				return nil
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			payment = models.OrderPaymentModel{
				ID:        uuid.NewString(),
				OrderID:   s.OrderID,
				CreatedAt: now,
			}
		default:
			return err
		}

		payment.Amount = s.NetAmount
		payment.Currency = s.Currency
		payment.Module = s.PaymentMethod
		payment.ModuleName = s.ModuleName
		payment.TransactionRef = s.TransactionRef
		payment.Status = domain.PaymentStatusSettled
		payment.UpdatedAt = now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if err := tx.Model(&order).Updates(map[string]interface{}{
			"orders_status":  s.PaidStatus,
			"payment_method": s.PaymentMethod,
			"updated_at":     now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.OrderTotalModel{}).
			Where("order_id = ? AND class = ?", s.OrderID, domain.TotalClassPaid).
			Updates(map[string]interface{}{
				"value": s.NetAmount,
				"text":  s.PaidText,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.OrderTotalModel{}).
			Where("order_id = ? AND class = ?", s.OrderID, domain.TotalClassDue).
			Updates(map[string]interface{}{
				"value": 0.0,
				"text":  s.DueText,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("customer_id = ?", s.CustomerID).
			Delete(&models.CustomerBasketModel{}).Error; err != nil {
			return err
		}

		applied = true
		return nil
	})

	return applied, err
}

func (r *DefaultOrderRepository) GetPaymentRecord(ctx context.Context, orderID int64) (*domain.OrderPaymentRecord, error) {
	var payment models.OrderPaymentModel
	if err := r.DB.WithContext(ctx).First(&payment, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainPaymentRecord(&payment), nil
}

func (r *DefaultOrderRepository) GetTotalLines(ctx context.Context, orderID int64) ([]*domain.OrderTotalLine, error) {
	var lineModels []models.OrderTotalModel
	if err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&lineModels).Error; err != nil {
		return nil, err
	}

	lines := make([]*domain.OrderTotalLine, len(lineModels))
	for i, lineModel := range lineModels {
		lines[i] = mappers.ToDomainTotalLine(&lineModel)
	}

	return lines, nil
}
