package domain

import "time"

const (
	TotalClassPaid = "ot_paid"
	TotalClassDue  = "ot_due"

	PaymentStatusSettled = "settled"
)

type Order struct {
	ID            int64
	CustomerID    int64
	Currency      string
	Total         float64
	OrdersStatus  int
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

// OrderPaymentRecord holds the settled gateway payment for an order.
// At most one record exists per order; repeated verifications update
// the existing row.
type OrderPaymentRecord struct {
	ID             string
	OrderID        int64
	Amount         float64
	Currency       string
	Module         string
	ModuleName     string
	TransactionRef string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderTotalLine struct {
	ID      int64
	OrderID int64
	Class   string
	Value   float64
	Text    string
}

// Settlement is the one allowed financial mutation of an order,
// applied atomically by the order repository.
type Settlement struct {
	OrderID        int64
	CustomerID     int64
	NetAmount      float64
	Currency       string
	TransactionRef string
	PaidStatus     int
	PaymentMethod  string
	ModuleName     string
	PaidText       string
	DueText        string
}
