package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStoreMetrics(reg)

	metrics.IncOrder(14600)
	metrics.IncCheckoutFailure("empty_cart")
	metrics.IncCodeIssued("nth_order")
	metrics.ObserveHTTP("POST", "/api/v1/checkout", "200", 250*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got := counterValue(t, mfs, "orders_total", "", ""); got != 1 {
		t.Fatalf("expected orders_total=1, got %f", got)
	}
	if got := counterValue(t, mfs, "order_revenue_cents_total", "", ""); got != 14600 {
		t.Fatalf("expected revenue 14600, got %f", got)
	}
	if got := counterValue(t, mfs, "checkout_failures_total", "reason", "empty_cart"); got != 1 {
		t.Fatalf("expected one failure, got %f", got)
	}
	if got := counterValue(t, mfs, "discount_codes_issued_total", "trigger", "nth_order"); got != 1 {
		t.Fatalf("expected one issued code, got %f", got)
	}
	if got := histogramSum(t, mfs, "http_request_duration_seconds"); got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestStoreMetricsNilSafe(t *testing.T) {
	var metrics *StoreMetrics
	metrics.IncOrder(1)
	metrics.IncCheckoutFailure("")
	metrics.IncCodeIssued("")
	metrics.ObserveHTTP("GET", "/", "200", time.Millisecond)

	empty := NewStoreMetrics(nil)
	empty.IncOrder(1)
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) float64 {
	t.Helper()
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		t.Fatalf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if label == "" || matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %q missing label %s=%s", name, label, value)
	return 0
}

func histogramSum(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		t.Fatalf("metric %q not found", name)
	}
	var sum float64
	for _, metric := range mf.GetMetric() {
		sum += metric.GetHistogram().GetSampleSum()
	}
	return sum
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, pair := range labels {
		if pair.GetName() == name && pair.GetValue() == value {
			return true
		}
	}
	return false
}
