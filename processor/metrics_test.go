package processor

import (
	"bytes"
	"testing"

	"github.com/irydacea/wescoco/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels prometheus.Labels) float64 {
	t.Helper()

	var metric dto.Metric
	if err := vec.With(labels).Write(&metric); err != nil {
		t.Fatalf("Failed to read metric: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func TestProcessLineMetrics(t *testing.T) {
	// Reset metrics to ensure clean state
	metrics.ProcessedLinesTotal.Reset()
	metrics.StandardLinesTotal.Reset()
	metrics.BannerMatchesTotal.Reset()

	var out bytes.Buffer
	p := New(&out, true)

	p.ProcessLine("Battle for Wesnoth v1.18.0\n")
	p.ProcessLine("20250101 12:00:01 warning test_domain: something happened\n")
	p.ProcessLine("20250101 12:00:02 info general: reading cache\n")
	p.ProcessLine("garbage input\n")

	if got := counterValue(t, metrics.ProcessedLinesTotal, prometheus.Labels{"class": "banner"}); got != 1 {
		t.Errorf("banner class count = %v, want 1", got)
	}
	if got := counterValue(t, metrics.ProcessedLinesTotal, prometheus.Labels{"class": "standard"}); got != 2 {
		t.Errorf("standard class count = %v, want 2", got)
	}
	if got := counterValue(t, metrics.ProcessedLinesTotal, prometheus.Labels{"class": "passthrough"}); got != 1 {
		t.Errorf("passthrough class count = %v, want 1", got)
	}
	if got := counterValue(t, metrics.StandardLinesTotal, prometheus.Labels{"level": "warning"}); got != 1 {
		t.Errorf("warning level count = %v, want 1", got)
	}
	if got := counterValue(t, metrics.BannerMatchesTotal, prometheus.Labels{"pattern": "version"}); got != 1 {
		t.Errorf("version pattern count = %v, want 1", got)
	}
}
