package extractsos

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SWOT-Confluence/extract-sos/types"
)

type countingMetrics struct {
	valid   int
	invalid int
}

func (c *countingMetrics) RecordOutcome(outcome types.Outcome) {
	if outcome == types.OutcomeValid {
		c.valid++
	} else {
		c.invalid++
	}
}

func TestRunSession(t *testing.T) {
	classifyByPrefix := types.ProcessorFunc(func(_ context.Context, reachID string, log io.Writer) types.Outcome {
		fmt.Fprintf(log, "appended %s\n", reachID)
		if strings.HasPrefix(reachID, "bad") {
			return types.OutcomeInvalid
		}

		return types.OutcomeValid
	})

	t.Run("preserves processing order in both lists", func(t *testing.T) {
		var log strings.Builder
		collector := &countingMetrics{}

		result := RunSession(context.Background(), 2,
			[]string{"1_2", "bad_1", "3_4", "bad_2"}, classifyByPrefix, &log, collector)

		require.Equal(t, 2, result.Rank)
		require.Equal(t, []string{"1_2", "3_4"}, result.Valid)
		require.Equal(t, []string{"bad_1", "bad_2"}, result.Invalid)
		require.Equal(t, 2, collector.valid)
		require.Equal(t, 2, collector.invalid)
	})

	t.Run("processor detail lands in the rank stream", func(t *testing.T) {
		var log strings.Builder

		RunSession(context.Background(), 0, []string{"1_2", "3_4"}, classifyByPrefix, &log, &countingMetrics{})

		require.Equal(t, "appended 1_2\nappended 3_4\n", log.String())
	})

	t.Run("an empty assignment yields an empty result", func(t *testing.T) {
		var log strings.Builder

		result := RunSession(context.Background(), 1, nil, classifyByPrefix, &log, &countingMetrics{})

		require.Empty(t, result.Valid)
		require.Empty(t, result.Invalid)
		require.Empty(t, log.String())
	})
}
