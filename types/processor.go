package types

import (
	"context"
	"io"
)

// Outcome is the classification a Processor assigns to one reach.
//
// Exactly two classifications exist. A processor must resolve every internal
// failure mode into one of them; per-reach failures never abort a run.
type Outcome int32

const (
	// OutcomeInvalid marks a reach whose processing failed or whose data
	// did not pass validation.
	OutcomeInvalid Outcome = iota

	// OutcomeValid marks a successfully processed reach.
	OutcomeValid
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	if o == OutcomeValid {
		return "valid"
	}

	return "invalid"
}

// Processor performs the domain-specific work for a single reach.
//
// Implementations may write arbitrary detail lines to the owning rank's log
// stream; the session passes the stream through untouched. Process is called
// sequentially within one rank but concurrently across ranks, so shared
// state inside an implementation must be safe for concurrent use.
type Processor interface {
	// Process classifies one reach.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - reachID: The reach identifier to process
	//   - log: The owning rank's log stream
	//
	// Returns:
	//   - Outcome: OutcomeValid or OutcomeInvalid, never anything else
	Process(ctx context.Context, reachID string, log io.Writer) Outcome
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx context.Context, reachID string, log io.Writer) Outcome

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, reachID string, log io.Writer) Outcome {
	return f(ctx, reachID, log)
}
