package metrics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectors_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollectors(reg)

	report := &domain.ValuationReport{
		Lines:        make([]domain.ValuedLine, 3),
		Revaluations: make([]domain.RevaluationEntry, 1),
		Skipped:      []domain.SkippedLine{{Reason: domain.SkipUnresolvedReference}},
	}
	c.ObserveRun(metrics.OutcomeSuccess, 10*time.Millisecond, report)
	c.ObserveRun(metrics.OutcomeFailure, time.Millisecond, nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.Runs.WithLabelValues(metrics.OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Runs.WithLabelValues(metrics.OutcomeFailure)))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.ValuedLines))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.RevaluationEntries))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.SkippedLines.WithLabelValues(domain.SkipUnresolvedReference)))
}

func TestCollectors_NilIsNoop(t *testing.T) {
	var c *metrics.Collectors
	assert.NotPanics(t, func() {
		c.ObserveRun(metrics.OutcomeSuccess, time.Second, &domain.ValuationReport{})
	})
}

func TestHTTPCollectors_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewHTTPCollectors(reg)

	c.Observe("GET", "/api/v1/valuations", "200", 5*time.Millisecond)
	c.Observe("GET", "/api/v1/valuations", "200", 7*time.Millisecond)
	c.Observe("GET", "/api/v1/balances", "404", time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.Requests.WithLabelValues("GET", "/api/v1/valuations", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Requests.WithLabelValues("GET", "/api/v1/balances", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.RequestDuration))

	var nilCollectors *metrics.HTTPCollectors
	assert.NotPanics(t, func() { nilCollectors.Observe("GET", "/health", "200", time.Millisecond) })
}
