package types

import "context"

// ReachSource discovers the raw item universe for a run.
//
// Implementations can enumerate various backends:
//   - Dir: file names under a data directory
//   - Static: fixed list for testing
//   - Custom: any discovery logic returning raw item names
//
// Only rank 0 consults the source; the derived plan reaches every other
// rank through the broadcast.
type ReachSource interface {
	// ListRawIDs returns all raw item names present at the source.
	//
	// The returned names are raw: deduplication and reach derivation happen
	// in plan.Build. Implementations should return consistent results for
	// the same backend state and surface discovery failures as errors.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []string: Raw item names
	//   - error: Discovery error (nil on success)
	ListRawIDs(ctx context.Context) ([]string, error)
}
