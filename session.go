package extractsos

import (
	"context"
	"io"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// RunSession drives one rank's local processing step.
//
// Each assigned reach is handed to the processor in order; the processor
// resolves every internal failure to one of the two classifications, so a
// failed reach lands in Invalid and the session continues. Detail lines per
// reach go to the rank's log stream, written by the processor in its own
// format.
//
// Valid and Invalid in the returned result preserve the processing order of
// reachIDs. Sessions on different ranks run fully in parallel; nothing here
// blocks on other ranks.
//
// Parameters:
//   - ctx: Context passed through to the processor
//   - rank: The owning rank, recorded in the result
//   - reachIDs: The rank's ordered assignment
//   - proc: The processing unit classifying each reach
//   - log: The rank's log stream
//   - collector: Records one measurement per classification
//
// Returns:
//   - types.RankResult: The rank's local outcomes
func RunSession(
	ctx context.Context,
	rank int,
	reachIDs []string,
	proc types.Processor,
	log io.Writer,
	collector types.SessionMetrics,
) types.RankResult {
	result := types.RankResult{
		Rank:    rank,
		Valid:   []string{},
		Invalid: []string{},
	}

	for _, reachID := range reachIDs {
		outcome := proc.Process(ctx, reachID, log)
		collector.RecordOutcome(outcome)
		if outcome == types.OutcomeValid {
			result.Valid = append(result.Valid, reachID)
		} else {
			result.Invalid = append(result.Invalid, reachID)
		}
	}

	return result
}
