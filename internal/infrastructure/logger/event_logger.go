package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PaymentAttemptEvent is the audit row written per callback, regardless
// of outcome. Financial state lives in the order tables; this is history.
type PaymentAttemptEvent struct {
	ID             uint `gorm:"primaryKey"`
	OrderID        int64
	TransactionRef string
	Outcome        string
	ResultCode     string
	Explanation    string
	NetAmount      float64
	Currency       string
	Timestamp      time.Time
}

type PaymentEventLogger interface {
	LogPaymentAttempt(ctx context.Context, event PaymentAttemptEvent) error
}

type PGPaymentEventLogger struct {
	db *gorm.DB
}

func NewPGPaymentEventLogger(db *gorm.DB) *PGPaymentEventLogger {
	db.AutoMigrate(&PaymentAttemptEvent{})
	return &PGPaymentEventLogger{db: db}
}

func (l *PGPaymentEventLogger) LogPaymentAttempt(ctx context.Context, event PaymentAttemptEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
