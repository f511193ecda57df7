package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/payquill/dpo-payment-service/internal/config"
	"github.com/payquill/dpo-payment-service/internal/domain"
	publisher "github.com/payquill/dpo-payment-service/internal/infrastructure/kafka"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/logger"
	"github.com/payquill/dpo-payment-service/internal/infrastructure/metrics"
)

// Prometheus collectors register globally, so every test shares one set.
var testMetrics = metrics.NewPaymentMetrics()

type fakeOrderRepo struct {
	orders map[int64]*domain.Order

	statusUpdates  map[int64]int
	settlements    []*domain.Settlement
	settledRefs    map[int64]string
	settleFailsErr error
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{
		orders:        make(map[int64]*domain.Order),
		statusUpdates: make(map[int64]int),
		settledRefs:   make(map[int64]string),
	}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus int) error {
	if _, ok := r.orders[orderID]; !ok {
		return domain.ErrOrderNotFound
	}
	r.statusUpdates[orderID] = newStatus
	return nil
}

func (r *fakeOrderRepo) ApplySettlement(ctx context.Context, s *domain.Settlement) (bool, error) {
	if r.settleFailsErr != nil {
		return false, r.settleFailsErr
	}
	if _, ok := r.orders[s.OrderID]; !ok {
		return false, domain.ErrOrderNotFound
	}
	if ref, ok := r.settledRefs[s.OrderID]; ok && ref == s.TransactionRef {
		return false, nil
	}
	r.settledRefs[s.OrderID] = s.TransactionRef
	r.settlements = append(r.settlements, s)
	r.orders[s.OrderID].OrdersStatus = s.PaidStatus
	r.orders[s.OrderID].PaymentMethod = s.PaymentMethod
	return true, nil
}

func (r *fakeOrderRepo) GetPaymentRecord(ctx context.Context, orderID int64) (*domain.OrderPaymentRecord, error) {
	ref, ok := r.settledRefs[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &domain.OrderPaymentRecord{
		OrderID:        orderID,
		TransactionRef: ref,
		Status:         domain.PaymentStatusSettled,
	}, nil
}

func (r *fakeOrderRepo) GetTotalLines(ctx context.Context, orderID int64) ([]*domain.OrderTotalLine, error) {
	return nil, nil
}

type fakeCurrencyRepo struct {
	currencies map[string]*domain.Currency
}

func (r *fakeCurrencyRepo) GetByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, ok := r.currencies[code]
	if !ok {
		return nil, domain.ErrCurrencyNotFound
	}
	return currency, nil
}

type fakeGateway struct {
	createResult *domain.TokenResult
	createErr    error

	verifyResults []*domain.VerificationResult
	verifyErr     error

	createCalls int
	verifyCalls int
}

func (g *fakeGateway) CreateToken(ctx context.Context, trans *domain.Transaction) (*domain.TokenResult, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResult, nil
}

func (g *fakeGateway) Verify(ctx context.Context, companyToken, transToken string) (*domain.VerificationResult, error) {
	g.verifyCalls++
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	result := g.verifyResults[0]
	if len(g.verifyResults) > 1 {
		g.verifyResults = g.verifyResults[1:]
	}
	return result, nil
}

// The usecase publishes asynchronously, so the fake locks.
type fakePublisher struct {
	mu     sync.Mutex
	events []publisher.PaymentEvent
}

func (p *fakePublisher) PublishPaymentEvent(topic string, event publisher.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type fakeEventLog struct {
	events []logger.PaymentAttemptEvent
}

func (l *fakeEventLog) LogPaymentAttempt(ctx context.Context, event logger.PaymentAttemptEvent) error {
	l.events = append(l.events, event)
	return nil
}

func testGatewayConfig() config.DPOGateway {
	return config.DPOGateway{
		Enabled:        true,
		PayURL:         "https://secure.3gdirectpay.com/payv2.php",
		CompanyToken:   "test-company-token",
		ServiceType:    "3854",
		RedirectURL:    "https://shop.test/callback/webhooks.payment.dpopay",
		VerifyAttempts: 3,
		VerifyDelay:    time.Millisecond,
		VerifyBound:    time.Second,
	}
}

func newTestUsecase(orderRepo *fakeOrderRepo, currencyRepo *fakeCurrencyRepo, gateway *fakeGateway) (*DefaultPaymentUsecase, *fakeEventLog) {
	eventLog := &fakeEventLog{}
	return &DefaultPaymentUsecase{
		OrderRepo:     orderRepo,
		CurrencyRepo:  currencyRepo,
		Gateway:       gateway,
		Publisher:     &fakePublisher{},
		EventLog:      eventLog,
		DebugLog:      logger.NewDebugLogger(false, ""),
		Metrics:       testMetrics,
		GatewayConfig: testGatewayConfig(),
		Statuses:      config.Statuses{Processing: 1, Paid: 2, Failed: 3},
		EventTopic:    "payment-events",
		newAttemptID:  func() string { return "attempt123456" },
	}, eventLog
}

func usdCurrencyRepo() *fakeCurrencyRepo {
	return &fakeCurrencyRepo{
		currencies: map[string]*domain.Currency{
			"USD": {
				Code:           "USD",
				SymbolLeft:     "",
				DecimalPlaces:  2,
				DecimalPoint:   ".",
				ThousandsPoint: ",",
			},
		},
	}
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:                1001,
		CustomerID:        42,
		Currency:          "USD",
		Total:             100.00,
		OrdersStatus:      1,
		CustomerFirstName: "Ada",
		CustomerLastName:  "Mwangi",
		CustomerEmail:     "ada@example.com",
		CustomerPhone:     "254700000000",
		CustomerAddress:   "1 Riverside Dr",
		CustomerCity:      "Nairobi",
		CustomerZip:       "00100",
		CustomerCountry:   "KE",
	}
}

func paidVerification() *domain.VerificationResult {
	return &domain.VerificationResult{
		WellFormed:          true,
		Result:              "000",
		ResultExplanation:   "Transaction Paid",
		TransactionAmount:   100.00,
		AllocationAmount:    3.00,
		TransactionCurrency: "USD",
		TransactionRef:      "DPO-REF-77",
	}
}
