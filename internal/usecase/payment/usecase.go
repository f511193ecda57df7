package usecase

import (
	"context"

	"github.com/jaevor/go-nanoid"
	"github.com/payquill/dpo-payment-service/internal/config"
	"github.com/payquill/dpo-payment-service/internal/domain"
	publisher "github.com/payquill/dpo-payment-service/internal/infrastructure/kafka"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/logger"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/metrics"
)

const (
	ModuleCode = "dpopay"
	ModuleName = "DPO Pay"

	resultPaid        = "000"
	resultDeclined    = "901"
	resultCancelled   = "904"
	resultTokenUnpaid = "900"
)

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, orderID int64) (string, error)
	HandleGatewayCallback(ctx context.Context, orderID int64, transToken string) (*CallbackResult, error)
}

// CallbackResult is the terminal decision for one gateway callback. The
// delivery layer turns it into exactly one redirect.
type CallbackResult struct {
	Outcome domain.Outcome
	OrderID int64
	Message string
}

type PaymentEventPublisher interface {
	PublishPaymentEvent(topic string, event publisher.PaymentEvent) error
}

type DefaultPaymentUsecase struct {
	OrderRepo    domain.OrderRepository
	CurrencyRepo domain.CurrencyRepository
	Gateway      domain.Gateway
	Publisher    PaymentEventPublisher
	EventLog     logger.PaymentEventLogger
	DebugLog     *logger.DebugLogger
	Metrics      *metrics.PaymentMetrics

	GatewayConfig config.DPOGateway
	Statuses      config.Statuses
	EventTopic    string

	newAttemptID func() string
}

func NewDefaultPaymentUsecase(
	orderRepo domain.OrderRepository,
	currencyRepo domain.CurrencyRepository,
	gateway domain.Gateway,
	eventPublisher PaymentEventPublisher,
	eventLog logger.PaymentEventLogger,
	debugLog *logger.DebugLogger,
	paymentMetrics *metrics.PaymentMetrics,
	gatewayConfig config.DPOGateway,
	statuses config.Statuses,
	eventTopic string) (*DefaultPaymentUsecase, error) {

	attemptID, err := nanoid.Standard(12)
	if err != nil {
		return nil, err
	}

	return &DefaultPaymentUsecase{
		OrderRepo:     orderRepo,
		CurrencyRepo:  currencyRepo,
		Gateway:       gateway,
		Publisher:     eventPublisher,
		EventLog:      eventLog,
		DebugLog:      debugLog,
		Metrics:       paymentMetrics,
		GatewayConfig: gatewayConfig,
		Statuses:      statuses,
		EventTopic:    eventTopic,
		newAttemptID:  attemptID,
	}, nil
}
