package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// Emitter formats the plan summary and the final report as log lines.
//
// The line formats are fixed; downstream tooling greps them. Emitter has no
// state beyond the sink and never writes anywhere else.
type Emitter struct {
	sink io.Writer
}

// NewEmitter creates an Emitter writing to sink.
func NewEmitter(sink io.Writer) *Emitter {
	return &Emitter{sink: sink}
}

// EmitPlan writes one count line per rank followed by the total line:
//
//	0   Reach count:    12
//	1   Reach count:    11
//	Total reach count: 23
//
// Returns:
//   - error: The first write error, if any
func (e *Emitter) EmitPlan(plan *types.Plan) error {
	total := 0
	for rank, reaches := range plan.Assignments {
		total += len(reaches)
		if _, err := fmt.Fprintf(e.sink, "%d   Reach count:    %d\n", rank, len(reaches)); err != nil {
			return fmt.Errorf("failed to write plan line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(e.sink, "Total reach count: %d\n", total); err != nil {
		return fmt.Errorf("failed to write plan total: %w", err)
	}

	return nil
}

// EmitReport writes the aggregate totals followed by labeled, blank-line
// separated listings of the valid and invalid reaches:
//
//	total valid: 2
//	total invalid: 1
//
//	valid reaches:
//	1_2, 5_6
//
//	invalid reaches:
//	3_4
//
// Returns:
//   - error: The first write error, if any
func (e *Emitter) EmitReport(report types.Report) error {
	lines := []string{
		fmt.Sprintf("total valid: %d", report.TotalValid),
		fmt.Sprintf("total invalid: %d", report.TotalInvalid),
		"",
		"valid reaches:",
		strings.Join(report.Valid, ", "),
		"",
		"invalid reaches:",
		strings.Join(report.Invalid, ", "),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(e.sink, line); err != nil {
			return fmt.Errorf("failed to write report line: %w", err)
		}
	}

	return nil
}
