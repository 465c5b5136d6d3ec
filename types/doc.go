// Package types defines the core data types and interfaces shared across
// the extract-sos library.
//
// It contains the reach identifier model, the partition Plan, per-rank
// results and the final Report, plus the capability interfaces the runner
// depends on (Comm, Processor, ReachSource, Logger, MetricsCollector).
//
// Keeping these in a leaf package avoids import cycles between the runner,
// the transports and the planning code.
package types
