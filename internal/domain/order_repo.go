package domain

import "context"

type OrderRepository interface {
	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, newStatus int) error

	// ApplySettlement runs the whole paid transition as one transaction
	// serialized per order: status change, payment record upsert, total
	// line rewrite, basket clear. Returns applied=false when the order
	// already carries a settled record for the same transaction ref.
	ApplySettlement(ctx context.Context, settlement *Settlement) (applied bool, err error)

	GetPaymentRecord(ctx context.Context, orderID int64) (*OrderPaymentRecord, error)
	GetTotalLines(ctx context.Context, orderID int64) ([]*OrderTotalLine, error)
}

type CurrencyRepository interface {
	GetByCode(ctx context.Context, code string) (*Currency, error)
}
