package models

import (
	"time"
)

type OrderModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement:false"`
	CustomerID    int64 `gorm:"index:idx_customer"`
	Currency      string
	Total         float64
	OrdersStatus  int `gorm:"index:idx_orders_status"`
	PaymentMethod string

	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAddress   string
	CustomerCity      string
	CustomerZip       string
	CustomerCountry   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderTotalModel struct {
	ID      int64  `gorm:"primaryKey"`
	OrderID int64  `gorm:"index:idx_total_order"`
	Class   string `gorm:"index:idx_total_class"`
	Value   float64
	Text    string
}

type CustomerBasketModel struct {
	ID         int64 `gorm:"primaryKey"`
	CustomerID int64 `gorm:"index:idx_basket_customer"`
	ProductID  int64
	Quantity   int
	CreatedAt  time.Time
}
