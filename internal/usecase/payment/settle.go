package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/payquill/dpo-payment-service/internal/domain"
	publisher "github.com/payquill/dpo-payment-service/internal/infrastructure/kafka"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/logger"
)

// HandleGatewayCallback reconciles one gateway redirect against its
// order: verification polling, outcome classification, settlement. The
// order is looked up before any gateway call is made.
func (uc *DefaultPaymentUsecase) HandleGatewayCallback(ctx context.Context, orderID int64, transToken string) (*CallbackResult, error) {
	if !uc.GatewayConfig.Active() {
		return nil, domain.ErrModuleDisabled
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	verification, err := uc.pollVerification(ctx, transToken)
	if err != nil && !errors.Is(err, domain.ErrVerificationTimeout) {
		return nil, err
	}

	outcome := ClassifyOutcome(verification)
	uc.Metrics.RecordOutcome(string(outcome))

	result := &CallbackResult{
		Outcome: outcome,
		OrderID: order.ID,
	}

	if outcome == domain.OutcomePaid {
		if err := uc.settle(ctx, order, verification); err != nil {
			return nil, err
		}
	} else {
		result.Message = outcomeMessage(outcome, verification)
	}

	uc.logAttempt(ctx, order.ID, outcome, verification)

	return result, nil
}

// settle applies the Verifying -> Settled transition. Everything
// financial happens inside one repository transaction keyed on the
// order; a duplicate delivery comes back with applied=false and is
// counted, not re-applied.
func (uc *DefaultPaymentUsecase) settle(ctx context.Context, order *domain.Order, verification *domain.VerificationResult) error {
	currency, err := uc.CurrencyRepo.GetByCode(ctx, order.Currency)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			return &domain.ConfigurationError{Field: fmt.Sprintf("currency %q", order.Currency)}
		}
		return err
	}

	netAmount := verification.TransactionAmount - verification.AllocationAmount

	settlement := &domain.Settlement{
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		NetAmount:      netAmount,
		Currency:       verification.TransactionCurrency,
		TransactionRef: verification.TransactionRef,
		PaidStatus:     uc.Statuses.Paid,
		PaymentMethod:  ModuleCode,
		ModuleName:     ModuleName,
		PaidText:       currency.FormatAmount(netAmount),
		DueText:        currency.FormatAmount(0),
	}

	start := time.Now()
	applied, err := uc.OrderRepo.ApplySettlement(ctx, settlement)
	uc.Metrics.RecordSettlementDuration(applied, time.Since(start).Seconds())
	if err != nil {
		return err
	}

	if !applied {
		uc.Metrics.RecordDuplicate(string(domain.OutcomePaid))
		uc.DebugLog.Logf("order %d already settled for ref %s, callback ignored",
			order.ID, verification.TransactionRef)
		return nil
	}

	uc.Metrics.RecordSettled(verification.TransactionCurrency, netAmount)
	uc.DebugLog.Logf("order %d settled: net %.2f %s ref %s",
		order.ID, netAmount, verification.TransactionCurrency, verification.TransactionRef)

	go func(event publisher.PaymentEvent) {
		if err := uc.Publisher.PublishPaymentEvent(uc.EventTopic, event); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "stage", "settlement", "error", err.Error())
		}
	}(publisher.PaymentEvent{
		OrderID:        order.ID,
		TransactionRef: verification.TransactionRef,
		Outcome:        string(domain.OutcomePaid),
		ResultCode:     verification.Result,
		NetAmount:      netAmount,
		Currency:       verification.TransactionCurrency,
	})

	return nil
}

func (uc *DefaultPaymentUsecase) logAttempt(ctx context.Context, orderID int64, outcome domain.Outcome, verification *domain.VerificationResult) {
	event := logger.PaymentAttemptEvent{
		OrderID:   orderID,
		Outcome:   string(outcome),
		Timestamp: time.Now(),
	}
	if verification != nil && verification.WellFormed {
		event.TransactionRef = verification.TransactionRef
		event.ResultCode = verification.Result
		event.Explanation = verification.ResultExplanation
		event.NetAmount = verification.TransactionAmount - verification.AllocationAmount
		event.Currency = verification.TransactionCurrency
	}

	if err := uc.EventLog.LogPaymentAttempt(ctx, event); err != nil {
		slog.Error("failed to write payment attempt event", "order_id", orderID, "error", err.Error())
	}
}
