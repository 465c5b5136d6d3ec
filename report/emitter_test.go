package report

import (
	"strings"
	"testing"

	"github.com/SWOT-Confluence/extract-sos/types"
	"github.com/stretchr/testify/require"
)

func TestEmitter_EmitPlan(t *testing.T) {
	var buf strings.Builder
	plan := &types.Plan{Assignments: [][]string{
		{"1_2", "3_4"},
		{"5_6"},
		{},
	}}

	err := NewEmitter(&buf).EmitPlan(plan)

	require.NoError(t, err)
	require.Equal(t,
		"0   Reach count:    2\n"+
			"1   Reach count:    1\n"+
			"2   Reach count:    0\n"+
			"Total reach count: 3\n",
		buf.String())
}

func TestEmitter_EmitReport(t *testing.T) {
	t.Run("writes labeled sections separated by blank lines", func(t *testing.T) {
		var buf strings.Builder
		report := types.Report{
			TotalValid:   2,
			TotalInvalid: 1,
			Valid:        []string{"1_2", "5_6"},
			Invalid:      []string{"3_4"},
		}

		err := NewEmitter(&buf).EmitReport(report)

		require.NoError(t, err)
		require.Equal(t,
			"total valid: 2\n"+
				"total invalid: 1\n"+
				"\n"+
				"valid reaches:\n"+
				"1_2, 5_6\n"+
				"\n"+
				"invalid reaches:\n"+
				"3_4\n"+
				"\n",
			buf.String())
	})

	t.Run("handles an empty report", func(t *testing.T) {
		var buf strings.Builder

		err := NewEmitter(&buf).EmitReport(Aggregate(nil))

		require.NoError(t, err)
		require.Contains(t, buf.String(), "total valid: 0\n")
		require.Contains(t, buf.String(), "total invalid: 0\n")
	})
}
