package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers the payment lifecycle per gateway.
type PaymentMetrics struct {
	PaymentsInitiatedTotal  *prometheus.CounterVec
	PaymentsConfirmedTotal  *prometheus.CounterVec
	PaymentsFailedTotal     *prometheus.CounterVec
	PaymentAmountConfirmed  *prometheus.CounterVec
	CallbackDuplicatesTotal *prometheus.CounterVec
	GatewayRequestDuration  *prometheus.HistogramVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		PaymentsInitiatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_initiated_total",
			Help: "Number of payment sessions opened per gateway",
		}, []string{"gateway"}),
		PaymentsConfirmedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_confirmed_total",
			Help: "Number of payments confirmed after verification per gateway",
		}, []string{"gateway"}),
		PaymentsFailedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Number of failed or cancelled payments per gateway and reason",
		}, []string{"gateway", "reason"}),
		PaymentAmountConfirmed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_amount_confirmed_total",
			Help: "Confirmed payment volume in BDT per gateway",
		}, []string{"gateway"}),
		CallbackDuplicatesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_callback_duplicates_total",
			Help: "Callback redeliveries that hit an already reconciled order",
		}, []string{"gateway"}),
		GatewayRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of init and verify operations per gateway",
			Buckets: prometheus.DefBuckets,
		}, []string{"gateway", "operation"}),
	}
}

func (m *PaymentMetrics) RecordInitiated(gateway string) {
	if m == nil {
		return
	}
	m.PaymentsInitiatedTotal.WithLabelValues(gateway).Inc()
}

func (m *PaymentMetrics) RecordConfirmed(gateway string, amount float64) {
	if m == nil {
		return
	}
	m.PaymentsConfirmedTotal.WithLabelValues(gateway).Inc()
	m.PaymentAmountConfirmed.WithLabelValues(gateway).Add(amount)
}

func (m *PaymentMetrics) RecordFailed(gateway, reason string) {
	if m == nil {
		return
	}
	m.PaymentsFailedTotal.WithLabelValues(gateway, reason).Inc()
}

func (m *PaymentMetrics) RecordDuplicate(gateway string) {
	if m == nil {
		return
	}
	m.CallbackDuplicatesTotal.WithLabelValues(gateway).Inc()
}

func (m *PaymentMetrics) ObserveGatewayRequest(gateway, operation string, seconds float64) {
	if m == nil {
		return
	}
	m.GatewayRequestDuration.WithLabelValues(gateway, operation).Observe(seconds)
}
