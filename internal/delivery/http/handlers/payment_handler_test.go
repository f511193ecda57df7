package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/payquill/dpo-payment-service/internal/config"
	"github.com/payquill/dpo-payment-service/internal/domain"
	paymentusecase "github.com/payquill/dpo-payment-service/internal/usecase/payment"
)

type fakeUsecase struct {
	initiateURL    string
	initiateErr    error
	callbackResult *paymentusecase.CallbackResult
	callbackErr    error

	initiateCalls int
	callbackCalls int
	lastOrderID   int64
	lastToken     string
}

func (f *fakeUsecase) InitiatePayment(ctx context.Context, orderID int64) (string, error) {
	f.initiateCalls++
	f.lastOrderID = orderID
	return f.initiateURL, f.initiateErr
}

func (f *fakeUsecase) HandleGatewayCallback(ctx context.Context, orderID int64, transToken string) (*paymentusecase.CallbackResult, error) {
	f.callbackCalls++
	f.lastOrderID = orderID
	f.lastToken = transToken
	return f.callbackResult, f.callbackErr
}

var testStorefront = config.Storefront{
	CheckoutSuccessURL: "https://shop.test/checkout_success.php",
	CheckoutPaymentURL: "https://shop.test/checkout_payment.php",
}

func doCallback(t *testing.T, uc *fakeUsecase, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewPaymentHandler(uc, testStorefront)
	req := httptest.NewRequest(http.MethodGet, "/callback/webhooks.payment.dpopay?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	handler.HandleCallback(rec, req)
	return rec
}

func errorMessageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	location := rec.Header().Get("Location")
	parsed, err := url.Parse(location)
	if err != nil {
		t.Fatalf("bad redirect location %q: %v", location, err)
	}
	return parsed.Query().Get("error_message")
}

func TestHandleCallback_PaidRedirectsToSuccess(t *testing.T) {
	uc := &fakeUsecase{
		callbackResult: &paymentusecase.CallbackResult{Outcome: domain.OutcomePaid, OrderID: 1001},
	}
	rec := doCallback(t, uc, url.Values{
		"action":           {"redirect"},
		"orders_id":        {"1001"},
		"TransactionToken": {"TOKEN-123"},
	})

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	want := "https://shop.test/checkout_success.php?orders_id=1001"
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("location = %s, want %s", got, want)
	}
	if uc.lastOrderID != 1001 || uc.lastToken != "TOKEN-123" {
		t.Errorf("callback args = %d/%s", uc.lastOrderID, uc.lastToken)
	}
}

func TestHandleCallback_DeclinedCarriesMessage(t *testing.T) {
	uc := &fakeUsecase{
		callbackResult: &paymentusecase.CallbackResult{
			Outcome: domain.OutcomeDeclined,
			OrderID: 1001,
			Message: "Transaction has been declined",
		},
	}
	rec := doCallback(t, uc, url.Values{
		"action":           {"redirect"},
		"orders_id":        {"1001"},
		"TransactionToken": {"TOKEN-123"},
	})

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := errorMessageOf(t, rec); got != "Transaction has been declined" {
		t.Errorf("error_message = %q", got)
	}
}

func TestHandleCallback_WrongActionNeverReachesUsecase(t *testing.T) {
	uc := &fakeUsecase{}
	rec := doCallback(t, uc, url.Values{
		"action":    {"notify"},
		"orders_id": {"1001"},
	})

	if uc.callbackCalls != 0 {
		t.Errorf("usecase called %d times for wrong action", uc.callbackCalls)
	}
	if got := errorMessageOf(t, rec); got != msgGenericError {
		t.Errorf("error_message = %q", got)
	}
}

func TestHandleCallback_BadOrderID(t *testing.T) {
	for _, raw := range []string{"", "abc", "-5", "0"} {
		uc := &fakeUsecase{}
		rec := doCallback(t, uc, url.Values{
			"action":    {"redirect"},
			"orders_id": {raw},
		})

		if uc.callbackCalls != 0 {
			t.Errorf("orders_id %q: usecase called", raw)
		}
		if got := errorMessageOf(t, rec); got != msgOrderNotFound {
			t.Errorf("orders_id %q: error_message = %q", raw, got)
		}
	}
}

func TestHandleCallback_OrderNotFound(t *testing.T) {
	uc := &fakeUsecase{callbackErr: domain.ErrOrderNotFound}
	rec := doCallback(t, uc, url.Values{
		"action":           {"redirect"},
		"orders_id":        {"9999"},
		"TransactionToken": {"TOKEN-123"},
	})

	if got := errorMessageOf(t, rec); got != msgOrderNotFound {
		t.Errorf("error_message = %q", got)
	}
}

func TestHandleCallback_UsecaseFailureStillRedirects(t *testing.T) {
	uc := &fakeUsecase{callbackErr: context.DeadlineExceeded}
	rec := doCallback(t, uc, url.Values{
		"action":           {"redirect"},
		"orders_id":        {"1001"},
		"TransactionToken": {"TOKEN-123"},
	})

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := errorMessageOf(t, rec); got != msgVerifyError {
		t.Errorf("error_message = %q", got)
	}
}

func TestHandleInitiate_RedirectsToPayURL(t *testing.T) {
	uc := &fakeUsecase{initiateURL: "https://secure.3gdirectpay.com/payv2.php?ID=TOKEN-123"}
	handler := NewPaymentHandler(uc, testStorefront)

	req := httptest.NewRequest(http.MethodPost, "/payments/initiate",
		strings.NewReader("orders_id=1001"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.HandleInitiate(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != uc.initiateURL {
		t.Errorf("location = %s", got)
	}
}

func TestHandleInitiate_ErrorPaths(t *testing.T) {
	cases := []struct {
		name       string
		ordersID   string
		err        error
		wantStatus int
	}{
		{"invalid id", "abc", nil, http.StatusBadRequest},
		{"order not found", "1001", domain.ErrOrderNotFound, http.StatusNotFound},
		{"module disabled", "1001", domain.ErrModuleDisabled, http.StatusServiceUnavailable},
		{"gateway failure", "1001", domain.ErrTokenCreateFailed, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUsecase{initiateErr: tc.err}
			handler := NewPaymentHandler(uc, testStorefront)

			req := httptest.NewRequest(http.MethodPost, "/payments/initiate",
				strings.NewReader("orders_id="+tc.ordersID))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			handler.HandleInitiate(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}
