// Package report merges per-rank outcomes into the run report and formats
// the plan summary and report as log lines.
//
// Aggregate is a pure function; Emitter only writes to the sink it is given.
package report
