package usecase

import (
	"fmt"

	"github.com/payquill/dpo-payment-service/internal/domain"
)

// ClassifyOutcome maps a verification response onto the closed outcome
// set. It is total: nothing falls through to an implicit success.
func ClassifyOutcome(verification *domain.VerificationResult) domain.Outcome {
	if verification == nil || !verification.WellFormed {
		return domain.OutcomeMalformed
	}

	switch verification.Result {
	case resultPaid:
		return domain.OutcomePaid
	case resultDeclined:
		return domain.OutcomeDeclined
	case resultCancelled:
		return domain.OutcomeCancelled
	default:
		return domain.OutcomeFailed
	}
}

const (
	msgDeclined  = "Transaction has been declined"
	msgCancelled = "User cancelled transaction"
)

// outcomeMessage is the user-facing reason carried on the error redirect.
// Failed and malformed responses include the raw result code and
// explanation so support can trace them.
func outcomeMessage(outcome domain.Outcome, verification *domain.VerificationResult) string {
	switch outcome {
	case domain.OutcomeDeclined:
		return msgDeclined
	case domain.OutcomeCancelled:
		return msgCancelled
	default:
		result, explanation := "none", "no well-formed response"
		if verification != nil && verification.WellFormed {
			result, explanation = verification.Result, verification.ResultExplanation
		}
		return fmt.Sprintf(
			"An error occurred while verifying payment. The transaction could not be verified. The result was %s and the explanation %s",
			result, explanation)
	}
}
