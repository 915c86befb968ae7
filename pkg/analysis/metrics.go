package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains Prometheus metrics for the analysis client. A nil
// *Metrics is valid and records nothing, so callers that do not care
// about telemetry can pass Options{} unchanged.
type Metrics struct {
	requests      *prometheus.CounterVec
	retries       *prometheus.CounterVec
	failures      *prometheus.CounterVec
	parseFailures *prometheus.CounterVec
}

// NewMetrics creates analysis metrics registered on reg. Passing
// prometheus.DefaultRegisterer wires them into the process-wide registry;
// tests pass a private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agie_analysis_requests_total",
				Help: "Total number of backend generation calls attempted",
			},
			[]string{"backend"},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agie_analysis_retries_total",
				Help: "Total number of retry attempts after a failed call",
			},
			[]string{"backend"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agie_analysis_failures_total",
				Help: "Total number of analyses that exhausted all retries",
			},
			[]string{"backend"},
		),
		parseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agie_analysis_parse_failures_total",
				Help: "Total number of backend responses rejected by the parser",
			},
			[]string{"backend"},
		),
	}

	reg.MustRegister(m.requests, m.retries, m.failures, m.parseFailures)
	return m
}

func (m *Metrics) recordRequest(backend string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(backend).Inc()
}

func (m *Metrics) recordRetry(backend string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(backend).Inc()
}

func (m *Metrics) recordFailure(backend string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(backend).Inc()
}

func (m *Metrics) recordParseFailure(backend string) {
	if m == nil {
		return
	}
	m.parseFailures.WithLabelValues(backend).Inc()
}
