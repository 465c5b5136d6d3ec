package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReachIDFromRaw(t *testing.T) {
	t.Run("joins first two tokens", func(t *testing.T) {
		id, ok := ReachIDFromRaw("12_34_sweep3.csv")
		require.True(t, ok)
		require.Equal(t, "12_34", id)
	})

	t.Run("accepts names with exactly two tokens", func(t *testing.T) {
		id, ok := ReachIDFromRaw("1_2")
		require.True(t, ok)
		require.Equal(t, "1_2", id)
	})

	t.Run("rejects names without a second token", func(t *testing.T) {
		_, ok := ReachIDFromRaw("loner")
		require.False(t, ok)

		_, ok = ReachIDFromRaw("trailing_")
		require.False(t, ok)

		_, ok = ReachIDFromRaw("_leading")
		require.False(t, ok)
	})
}

func TestPlan_Checksum(t *testing.T) {
	t.Run("is stable for identical plans", func(t *testing.T) {
		a := &Plan{Assignments: [][]string{{"1_2", "3_4"}, {"5_6"}}}
		b := &Plan{Assignments: [][]string{{"1_2", "3_4"}, {"5_6"}}}
		require.Equal(t, a.Checksum(), b.Checksum())
	})

	t.Run("differs when the same reaches split differently", func(t *testing.T) {
		a := &Plan{Assignments: [][]string{{"1_2", "3_4"}, {"5_6"}}}
		b := &Plan{Assignments: [][]string{{"1_2"}, {"3_4", "5_6"}}}
		require.NotEqual(t, a.Checksum(), b.Checksum())
	})
}

func TestPlan_Accessors(t *testing.T) {
	p := &Plan{Assignments: [][]string{{"1_2", "3_4"}, {"5_6"}, {}}}

	require.Equal(t, 3, p.Size())
	require.Equal(t, 3, p.Total())
	require.Equal(t, []string{"5_6"}, p.Slice(1))
	require.Empty(t, p.Slice(2))
	require.Nil(t, p.Slice(-1))
	require.Nil(t, p.Slice(3))
}
