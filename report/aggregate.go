package report

import "github.com/SWOT-Confluence/extract-sos/types"

// Aggregate merges per-rank results into a single Report.
//
// Results must be listed in ascending rank order (the order Comm.Gather
// returns them in). Each rank's valid and invalid sequences are concatenated
// in that order with their internal processing order preserved, and the
// totals are the lengths of the concatenations.
//
// Aggregate is pure: the same input always yields the same Report, and the
// input slices are not retained or mutated.
func Aggregate(results []types.RankResult) types.Report {
	report := types.Report{
		Valid:   []string{},
		Invalid: []string{},
	}
	for _, r := range results {
		report.Valid = append(report.Valid, r.Valid...)
		report.Invalid = append(report.Invalid, r.Invalid...)
	}
	report.TotalValid = len(report.Valid)
	report.TotalInvalid = len(report.Invalid)

	return report
}
