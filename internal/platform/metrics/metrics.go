package metrics

import (
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "valuation"

// Run outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collectors holds the Prometheus collectors for valuation runs.
// A nil *Collectors is valid and records nothing.
type Collectors struct {
	Runs               *prometheus.CounterVec
	ValuedLines        prometheus.Counter
	SkippedLines       *prometheus.CounterVec
	RevaluationEntries prometheus.Counter
	RunDuration        prometheus.Histogram
}

// NewCollectors registers the valuation collectors with reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Valuation runs by outcome.",
		}, []string{"outcome"}),
		ValuedLines: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "valued_lines_total",
			Help:      "Transaction lines valued.",
		}),
		SkippedLines: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_lines_total",
			Help:      "Transaction lines skipped because a reference could not be resolved.",
		}, []string{"reason"}),
		RevaluationEntries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revaluation_entries_total",
			Help:      "Revaluation entries emitted.",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of valuation runs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveRun records one finished run. report may be nil for failed runs.
func (c *Collectors) ObserveRun(outcome string, elapsed time.Duration, report *domain.ValuationReport) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(outcome).Inc()
	c.RunDuration.Observe(elapsed.Seconds())
	if report == nil {
		return
	}
	c.ValuedLines.Add(float64(len(report.Lines) - len(report.Revaluations)))
	c.RevaluationEntries.Add(float64(len(report.Revaluations)))
	for _, s := range report.Skipped {
		c.SkippedLines.WithLabelValues(s.Reason).Inc()
	}
}

// HTTPCollectors holds the request collectors for the HTTP surface.
// A nil *HTTPCollectors is valid and records nothing.
type HTTPCollectors struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewHTTPCollectors registers the HTTP collectors with reg.
func NewHTTPCollectors(reg prometheus.Registerer) *HTTPCollectors {
	factory := promauto.With(reg)
	return &HTTPCollectors{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Observe records one finished request.
func (c *HTTPCollectors) Observe(method, route, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Requests.WithLabelValues(method, route, status).Inc()
	c.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
