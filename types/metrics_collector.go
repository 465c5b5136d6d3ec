package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations must be non-blocking and safe for concurrent use; the
// session records outcomes from every rank's goroutine in single-process
// deployments.
type MetricsCollector interface {
	RunMetrics
	SessionMetrics
}

// RunMetrics covers coordinator-level measurements.
type RunMetrics interface {
	// RecordPhaseDuration records the wall time of one run phase.
	//
	// Parameters:
	//   - phase: Phase name ("plan", "broadcast", "process", "gather", "report")
	//   - seconds: Elapsed time in seconds
	RecordPhaseDuration(phase string, seconds float64)

	// RecordPlanSize records the number of reaches assigned to a rank.
	RecordPlanSize(rank int, reaches int)
}

// SessionMetrics covers per-reach measurements.
type SessionMetrics interface {
	// RecordOutcome records one reach classification.
	RecordOutcome(outcome Outcome)
}
