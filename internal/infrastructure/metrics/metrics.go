package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers the gateway integration: initiations, callback
// outcomes, verify polling and settlement.
type PaymentMetrics struct {
	InitiationsTotal       prometheus.CounterVec
	InitiationAmountTotal  prometheus.CounterVec
	CallbackOutcomesTotal  prometheus.CounterVec
	SettledAmountTotal     prometheus.CounterVec
	DuplicateCallbacks     prometheus.CounterVec
	VerifyAttempts         prometheus.HistogramVec
	SettlementDuration     prometheus.HistogramVec
	GatewayErrorsTotal     prometheus.CounterVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		InitiationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_initiations_total",
				Help: "Number of payment initiations sent to the gateway",
			},
			[]string{"currency", "result"},
		),

		InitiationAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_initiation_amount_total",
				Help: "Total amount of initiated payments",
			},
			[]string{"currency"},
		),

		CallbackOutcomesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_callback_outcomes_total",
				Help: "Classified gateway callback outcomes",
			},
			[]string{"outcome"},
		),

		SettledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_settled_amount_total",
				Help: "Net settled amount per currency",
			},
			[]string{"currency"},
		),

		DuplicateCallbacks: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_duplicate_callbacks_total",
				Help: "Callbacks that found the order already settled",
			},
			[]string{"outcome"},
		),

		VerifyAttempts: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_verify_attempts",
				Help:    "Verify calls made before a well-formed response",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
			[]string{"terminal"},
		),

		SettlementDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_settlement_duration_seconds",
				Help:    "Time spent applying the settlement transaction",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"applied"},
		),

		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_gateway_errors_total",
				Help: "Transport and configuration errors by type",
			},
			[]string{"error_type"},
		),
	}
}

func (m *PaymentMetrics) RecordInitiation(currency, result string, amount float64) {
	m.InitiationsTotal.WithLabelValues(currency, result).Inc()
	m.InitiationAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *PaymentMetrics) RecordOutcome(outcome string) {
	m.CallbackOutcomesTotal.WithLabelValues(outcome).Inc()
}

func (m *PaymentMetrics) RecordSettled(currency string, netAmount float64) {
	m.SettledAmountTotal.WithLabelValues(currency).Add(netAmount)
}

func (m *PaymentMetrics) RecordDuplicate(outcome string) {
	m.DuplicateCallbacks.WithLabelValues(outcome).Inc()
}

func (m *PaymentMetrics) RecordVerifyAttempts(terminal string, attempts int) {
	m.VerifyAttempts.WithLabelValues(terminal).Observe(float64(attempts))
}

func (m *PaymentMetrics) RecordSettlementDuration(applied bool, seconds float64) {
	appliedStr := "false"
	if applied {
		appliedStr = "true"
	}
	m.SettlementDuration.WithLabelValues(appliedStr).Observe(seconds)
}

func (m *PaymentMetrics) RecordError(errorType string) {
	m.GatewayErrorsTotal.WithLabelValues(errorType).Inc()
}
