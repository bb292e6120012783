package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records storefront business counters.
type StoreMetrics struct {
	orders           prometheus.Counter
	checkoutFailures *prometheus.CounterVec
	codesIssued      *prometheus.CounterVec
	revenueCents     prometheus.Counter
	httpDuration     *prometheus.HistogramVec
}

// NewStoreMetrics registers the storefront metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_total",
		Help: "Orders committed to the journal.",
	})
	checkoutFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Checkout attempts rejected by a business rule.",
	}, []string{"reason"})
	codesIssued := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "discount_codes_issued_total",
		Help: "Discount codes minted, by trigger path.",
	}, []string{"trigger"})
	revenueCents := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_revenue_cents_total",
		Help: "Sum of order totals in cents.",
	})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(orders, checkoutFailures, codesIssued, revenueCents, httpDuration)
	return &StoreMetrics{
		orders:           orders,
		checkoutFailures: checkoutFailures,
		codesIssued:      codesIssued,
		revenueCents:     revenueCents,
		httpDuration:     httpDuration,
	}
}

// IncOrder records a committed order and its total.
func (m *StoreMetrics) IncOrder(totalCents int64) {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.Inc()
	m.revenueCents.Add(float64(totalCents))
}

// IncCheckoutFailure increments the failure counter for the given reason.
func (m *StoreMetrics) IncCheckoutFailure(reason string) {
	if m == nil || m.checkoutFailures == nil {
		return
	}
	m.checkoutFailures.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncCodeIssued increments the minted-code counter for the given trigger.
func (m *StoreMetrics) IncCodeIssued(trigger string) {
	if m == nil || m.codesIssued == nil {
		return
	}
	m.codesIssued.WithLabelValues(normalizeLabel(trigger)).Inc()
}

// ObserveHTTP records one served request.
func (m *StoreMetrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, normalizeLabel(route), status).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
