// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/SWOT-Confluence/extract-sos/types"

// NopMetrics discards all measurements.
//
// Used as the runner's default when the caller supplies no collector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPhaseDuration discards the measurement.
func (n *NopMetrics) RecordPhaseDuration(_ /* phase */ string, _ /* seconds */ float64) {}

// RecordPlanSize discards the measurement.
func (n *NopMetrics) RecordPlanSize(_ /* rank */ int, _ /* reaches */ int) {}

// RecordOutcome discards the measurement.
func (n *NopMetrics) RecordOutcome(_ /* outcome */ types.Outcome) {}
