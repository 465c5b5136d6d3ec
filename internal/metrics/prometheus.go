package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	phaseDuration *prometheus.HistogramVec
	planSize      *prometheus.GaugeVec
	outcomes      *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "extract_sos" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector recording to Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "extract_sos"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

// ensureRegistered lazily creates and registers the metric vectors, so a
// collector that is constructed but never used registers nothing.
func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.phaseDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "phase_duration_seconds",
			Help:      "Wall time of each run phase.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"phase"})

		p.planSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "reaches",
			Help:      "Number of reaches assigned to each rank.",
		}, []string{"rank"})

		p.outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "session",
			Name:      "outcomes_total",
			Help:      "Total reach classifications by outcome.",
		}, []string{"outcome"})

		p.reg.MustRegister(p.phaseDuration, p.planSize, p.outcomes)
	})
}

// RecordPhaseDuration records the wall time of one run phase.
func (p *PrometheusCollector) RecordPhaseDuration(phase string, seconds float64) {
	p.ensureRegistered()
	p.phaseDuration.WithLabelValues(phase).Observe(seconds)
}

// RecordPlanSize records the number of reaches assigned to a rank.
func (p *PrometheusCollector) RecordPlanSize(rank int, reaches int) {
	p.ensureRegistered()
	p.planSize.WithLabelValues(strconv.Itoa(rank)).Set(float64(reaches))
}

// RecordOutcome records one reach classification.
func (p *PrometheusCollector) RecordOutcome(outcome types.Outcome) {
	p.ensureRegistered()
	p.outcomes.WithLabelValues(outcome.String()).Inc()
}
