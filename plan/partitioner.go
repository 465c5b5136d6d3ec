package plan

import (
	"sort"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// Build derives reach identifiers from raw item names and assigns them to
// workerCount ranks.
//
// The algorithm:
//  1. Derive each raw name's reach identifier (first two underscore tokens)
//     and deduplicate; names without two tokens are skipped.
//  2. Sort the reach set lexicographically. Map iteration order is
//     randomized in Go, and a plan that varies between runs on identical
//     input breaks reproducibility, so an explicit order is imposed here.
//  3. Hand out contiguous blocks of total/workerCount reaches, block i to
//     rank i.
//  4. Distribute the remaining total%workerCount reaches one at a time to
//     ranks 0, 1, 2, ... wrapping at workerCount.
//
// Per-rank counts differ by at most one; with fewer reaches than ranks,
// trailing ranks legitimately receive empty slices.
//
// Parameters:
//   - rawIDs: Raw item names, duplicates and repeated prefixes allowed
//   - workerCount: Number of ranks to split across (must be >= 1)
//
// Returns:
//   - *types.Plan: The immutable assignment, indexed by rank
//   - error: types.ErrInvalidWorkerCount when workerCount < 1
func Build(rawIDs []string, workerCount int) (*types.Plan, error) {
	if workerCount < 1 {
		return nil, types.ErrInvalidWorkerCount
	}

	reaches := Derive(rawIDs)
	total := len(reaches)
	base := total / workerCount

	assignments := make([][]string, workerCount)
	cursor := 0
	for rank := range workerCount {
		assignments[rank] = append([]string(nil), reaches[cursor:cursor+base]...)
		cursor += base
	}

	// Spread the remainder round-robin from rank 0. The remainder is < N by
	// construction; the modulo keeps the walk valid even if it weren't.
	for j := 0; cursor < total; j++ {
		rank := j % workerCount
		assignments[rank] = append(assignments[rank], reaches[cursor])
		cursor++
	}

	return &types.Plan{Assignments: assignments}, nil
}

// Derive returns the sorted, deduplicated reach identifiers for rawIDs.
//
// Raw names that do not contain two underscore-delimited tokens are
// silently dropped; they name no reach.
func Derive(rawIDs []string) []string {
	seen := make(map[string]struct{}, len(rawIDs))
	reaches := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, ok := types.ReachIDFromRaw(raw)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		reaches = append(reaches, id)
	}

	sort.Strings(reaches)

	return reaches
}
