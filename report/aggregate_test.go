package report

import (
	"testing"

	"github.com/SWOT-Confluence/extract-sos/types"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("concatenates in rank order preserving processing order", func(t *testing.T) {
		results := []types.RankResult{
			{Rank: 0, Valid: []string{"1_2", "3_4"}, Invalid: []string{"5_6"}},
			{Rank: 1, Valid: []string{"7_8"}, Invalid: nil},
			{Rank: 2, Valid: nil, Invalid: []string{"9_9", "2_2"}},
		}

		got := Aggregate(results)

		require.Equal(t, []string{"1_2", "3_4", "7_8"}, got.Valid)
		require.Equal(t, []string{"5_6", "9_9", "2_2"}, got.Invalid)
		require.Equal(t, 3, got.TotalValid)
		require.Equal(t, 3, got.TotalInvalid)
	})

	t.Run("returns an empty report for no results", func(t *testing.T) {
		got := Aggregate(nil)

		require.Zero(t, got.TotalValid)
		require.Zero(t, got.TotalInvalid)
		require.Empty(t, got.Valid)
		require.Empty(t, got.Invalid)
	})

	t.Run("is pure", func(t *testing.T) {
		results := []types.RankResult{
			{Rank: 0, Valid: []string{"1_2"}, Invalid: []string{"3_4"}},
		}

		first := Aggregate(results)
		second := Aggregate(results)

		require.Equal(t, first, second)
		require.Equal(t, []string{"1_2"}, results[0].Valid)
	})
}
