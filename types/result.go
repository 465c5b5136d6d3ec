package types

// RankResult holds one rank's local processing outcomes.
//
// Valid and Invalid preserve the order in which the rank processed its
// assigned reaches. A RankResult is owned by the producing rank until the
// gather completes; the coordinator owns every result afterwards.
type RankResult struct {
	// Rank is the producing worker's rank (0..N-1).
	Rank int `json:"rank"`

	// Valid lists reaches classified as valid, in processing order.
	Valid []string `json:"valid"`

	// Invalid lists reaches classified as invalid, in processing order.
	Invalid []string `json:"invalid"`
}

// Report is the coordinator's consolidated view of a run.
//
// Built exactly once per run, after the gather, by report.Aggregate.
// Valid and Invalid concatenate the per-rank sequences in ascending rank
// order, each rank's internal order preserved.
type Report struct {
	// TotalValid is the number of reaches classified valid across all ranks.
	TotalValid int `json:"totalValid"`

	// TotalInvalid is the number of reaches classified invalid across all ranks.
	TotalInvalid int `json:"totalInvalid"`

	// Valid is the global valid sequence in rank order.
	Valid []string `json:"valid"`

	// Invalid is the global invalid sequence in rank order.
	Invalid []string `json:"invalid"`
}
