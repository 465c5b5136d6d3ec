package extractsos

import (
	"io"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// Option configures a Runner with optional dependencies.
type Option func(*runnerOptions)

// runnerOptions holds optional Runner configuration.
type runnerOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	rankLog io.Writer
	mainLog io.Writer
}

// WithLogger sets a structured logger for the runner's own events.
//
// This is separate from the rank log streams: the logger carries phase and
// error events, the streams carry the report lines and processor detail.
//
// Example:
//
//	runner, err := extractsos.NewRunner(&cfg, handle, src, proc,
//	    extractsos.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger types.Logger) Option {
	return func(o *runnerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "extract_sos")
//	runner, err := extractsos.NewRunner(&cfg, handle, src, proc,
//	    extractsos.WithMetrics(collector))
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *runnerOptions) {
		o.metrics = collector
	}
}

// WithRankLog replaces the rank's "<rank>.log" file with an explicit sink.
//
// Useful in tests and in single-process runs that want to keep each rank's
// stream in memory.
func WithRankLog(sink io.Writer) Option {
	return func(o *runnerOptions) {
		o.rankLog = sink
	}
}

// WithMainLog replaces the coordinator's "main.log" file with an explicit
// sink. Only consulted on the coordinator rank.
func WithMainLog(sink io.Writer) Option {
	return func(o *runnerOptions) {
		o.mainLog = sink
	}
}
