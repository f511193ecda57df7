package usecase

import (
	"context"
	"fmt"

	"github.com/payquill/dpo-payment-service/internal/domain"
)

// InitiatePayment creates a gateway token for the order and returns the
// hosted payment page URL the payer must be redirected to. The order is
// moved to the processing status before the gateway is contacted.
func (uc *DefaultPaymentUsecase) InitiatePayment(ctx context.Context, orderID int64) (string, error) {
	if !uc.GatewayConfig.Active() {
		return "", domain.ErrModuleDisabled
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	trans, err := uc.buildTransaction(order)
	if err != nil {
		return "", err
	}

	if err := uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, uc.Statuses.Processing); err != nil {
		return "", fmt.Errorf("moving order %d to processing: %w", order.ID, err)
	}

	token, err := uc.Gateway.CreateToken(ctx, trans)
	if err != nil {
		uc.Metrics.RecordError("create_token")
		return "", err
	}
	if !token.Success {
		uc.Metrics.RecordInitiation(order.Currency, "rejected", order.Total)
		uc.DebugLog.Logf("createToken rejected for order %d: result=%s explanation=%s",
			order.ID, token.Result, token.ResultExplanation)
		return "", fmt.Errorf("%w: result %s (%s)",
			domain.ErrTokenCreateFailed, token.Result, token.ResultExplanation)
	}

	// One verify before redirecting: a fresh token reports "transaction
	// not paid" until the payer completes the hosted flow.
	verification, err := uc.Gateway.Verify(ctx, uc.GatewayConfig.CompanyToken, token.TransToken)
	if err != nil {
		uc.Metrics.RecordError("verify")
		return "", err
	}
	if !verification.WellFormed || verification.Result != resultTokenUnpaid {
		uc.Metrics.RecordInitiation(order.Currency, "unverified", order.Total)
		return "", fmt.Errorf("%w: token did not verify as pending",
			domain.ErrTokenCreateFailed)
	}

	uc.Metrics.RecordInitiation(order.Currency, "ok", order.Total)
	uc.DebugLog.Logf("order %d initiated, token %s", order.ID, token.TransToken)

	return fmt.Sprintf("%s?ID=%s", uc.GatewayConfig.PayURL, token.TransToken), nil
}

// buildTransaction is the pure order-snapshot to gateway-payload
// transform. It fails fast when merchant configuration is incomplete so
// no initiation is attempted with half a credential.
func (uc *DefaultPaymentUsecase) buildTransaction(order *domain.Order) (*domain.Transaction, error) {
	if uc.GatewayConfig.CompanyToken == "" {
		return nil, &domain.ConfigurationError{Field: "company token"}
	}
	if uc.GatewayConfig.ServiceType == "" {
		return nil, &domain.ConfigurationError{Field: "service type"}
	}

	return &domain.Transaction{
		CompanyToken:      uc.GatewayConfig.CompanyToken,
		ServiceType:       uc.GatewayConfig.ServiceType,
		CustomerPhone:     order.CustomerPhone,
		CustomerZip:       order.CustomerZip,
		CustomerCountry:   order.CustomerCountry,
		CustomerAddress:   order.CustomerAddress,
		CustomerCity:      order.CustomerCity,
		CustomerEmail:     order.CustomerEmail,
		CustomerFirstName: order.CustomerFirstName,
		CustomerLastName:  order.CustomerLastName,
		PaymentAmount:     order.Total,
		PaymentCurrency:   order.Currency,
		CompanyRef:        fmt.Sprintf("%d-%s", order.ID, uc.newAttemptID()),
		RedirectURL: fmt.Sprintf("%s?action=redirect&orders_id=%d&reference=%d",
			uc.GatewayConfig.RedirectURL, order.ID, order.ID),
	}, nil
}
