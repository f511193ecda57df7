package handlers

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/payquill/dpo-payment-service/internal/config"
	"github.com/payquill/dpo-payment-service/internal/domain"
	paymentusecase "github.com/payquill/dpo-payment-service/internal/usecase/payment"
)

const (
	actionRedirect = "redirect"

	msgGenericError  = "An error occured while processing the DPO Pay response."
	msgOrderNotFound = "An error occured while processing transaction. The order could not be found"
	msgVerifyError   = "An error occurred while verifying payment."
)

// PaymentHandler owns the two HTTP entry points: checkout initiation and
// the gateway's redirect callback. Every callback path terminates in
// exactly one redirect back to the storefront.
type PaymentHandler struct {
	usecase    paymentusecase.PaymentUsecase
	storefront config.Storefront
}

func NewPaymentHandler(uc paymentusecase.PaymentUsecase, storefront config.Storefront) *PaymentHandler {
	return &PaymentHandler{
		usecase:    uc,
		storefront: storefront,
	}
}

// HandleInitiate terminates the checkout request with a redirect to the
// gateway's hosted payment page. Failures never redirect; the storefront
// presents a retry option instead.
func (h *PaymentHandler) HandleInitiate(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseOrderID(r.FormValue("orders_id"))
	if err != nil {
		http.Error(w, "invalid orders_id", http.StatusBadRequest)
		return
	}

	payURL, err := h.usecase.InitiatePayment(r.Context(), orderID)
	if err != nil {
		slog.Error("payment initiation failed", "order_id", orderID, "error", err.Error())
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrModuleDisabled):
			http.Error(w, "payment module is disabled", http.StatusServiceUnavailable)
		default:
			http.Error(w, "payment initiation failed", http.StatusBadGateway)
		}
		return
	}

	http.Redirect(w, r, payURL, http.StatusFound)
}

// HandleCallback is where the DPO Pay redirect response comes in.
func (h *PaymentHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	action := html.EscapeString(r.FormValue("action"))
	if action != actionRedirect {
		h.redirectError(w, r, msgGenericError)
		return
	}

	orderID, err := parseOrderID(html.EscapeString(r.FormValue("orders_id")))
	if err != nil {
		h.redirectError(w, r, msgOrderNotFound)
		return
	}
	transToken := html.EscapeString(r.FormValue("TransactionToken"))

	result, err := h.usecase.HandleGatewayCallback(r.Context(), orderID, transToken)
	if err != nil {
		slog.Error("gateway callback failed", "order_id", orderID, "error", err.Error())
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			h.redirectError(w, r, msgOrderNotFound)
		default:
			h.redirectError(w, r, msgVerifyError)
		}
		return
	}

	if result.Outcome == domain.OutcomePaid {
		h.redirectSuccess(w, r, result.OrderID)
		return
	}

	h.redirectError(w, r, result.Message)
}

func (h *PaymentHandler) redirectSuccess(w http.ResponseWriter, r *http.Request, orderID int64) {
	target := fmt.Sprintf("%s?orders_id=%d", h.storefront.CheckoutSuccessURL, orderID)
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *PaymentHandler) redirectError(w http.ResponseWriter, r *http.Request, message string) {
	target := fmt.Sprintf("%s?error_message=%s",
		h.storefront.CheckoutPaymentURL, url.QueryEscape(message))
	http.Redirect(w, r, target, http.StatusFound)
}

func parseOrderID(raw string) (int64, error) {
	orderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || orderID <= 0 {
		return 0, fmt.Errorf("invalid order id %q", raw)
	}
	return orderID, nil
}
