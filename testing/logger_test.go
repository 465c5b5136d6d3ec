package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("pairs keys with values", func(t *testing.T) {
		got := render("INFO", "plan built", []any{"reaches", 4, "ranks", 2})
		require.Equal(t, "INFO: plan built reaches=4 ranks=2", got)
	})

	t.Run("no fields yields the bare message", func(t *testing.T) {
		require.Equal(t, "WARN: stalled", render("WARN", "stalled", nil))
	})

	t.Run("a dangling key is marked missing", func(t *testing.T) {
		got := render("ERROR", "gather failed", []any{"rank"})
		require.Equal(t, "ERROR: gather failed rank=<missing>", got)
	})
}

func TestNewTestLogger(t *testing.T) {
	log := NewTestLogger(t)

	// Exercised for output only; failures would surface through t.
	log.Debug("debug line", "k", "v")
	log.Info("info line")
	log.Warn("warn line", "count", 3)
	log.Error("error line", "err", "boom")
}
