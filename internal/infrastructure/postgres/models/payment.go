package models

import (
	"time"
)

// OrderPaymentModel keeps one row per order. The unique index is the
// backstop for the first-writer-creates invariant; settlement itself
// runs under a row lock on the order.
type OrderPaymentModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	OrderID        int64  `gorm:"uniqueIndex:idx_payment_order"`
	Amount         float64
	Currency       string
	Module         string
	ModuleName     string
	TransactionRef string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CurrencyModel struct {
	Code           string `gorm:"primaryKey"`
	SymbolLeft     string
	SymbolRight    string
	DecimalPlaces  int
	DecimalPoint   string
	ThousandsPoint string
}
