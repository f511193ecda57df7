package usecase

import (
	"context"
	"time"

	"github.com/payquill/dpo-payment-service/internal/domain"
)

// pollVerification calls verify until a well-formed response arrives or
// a bound trips. Malformed payloads are retried after a fixed delay;
// transport errors propagate immediately. Both the attempt count and the
// wall-clock bound are hard limits, so a gateway that keeps returning
// junk yields ErrVerificationTimeout instead of looping forever.
func (uc *DefaultPaymentUsecase) pollVerification(ctx context.Context, transToken string) (*domain.VerificationResult, error) {
	maxAttempts := uc.GatewayConfig.VerifyAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	bound := uc.GatewayConfig.VerifyBound
	if bound <= 0 {
		bound = 30 * time.Second
	}
	delay := uc.GatewayConfig.VerifyDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	deadline := time.Now().Add(bound)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		verification, err := uc.Gateway.Verify(ctx, uc.GatewayConfig.CompanyToken, transToken)
		if err != nil {
			uc.Metrics.RecordVerifyAttempts("transport_error", attempt)
			return nil, err
		}
		if verification.WellFormed {
			uc.Metrics.RecordVerifyAttempts("well_formed", attempt)
			return verification, nil
		}

		uc.DebugLog.Logf("verify attempt %d returned malformed payload for token %s", attempt, transToken)

		if attempt == maxAttempts || time.Now().Add(delay).After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	uc.Metrics.RecordVerifyAttempts("exhausted", maxAttempts)
	return nil, domain.ErrVerificationTimeout
}
