package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelDebug)

	logger.Debug("debug message", "rank", 0)
	logger.Info("info message", "reaches", 12)
	logger.Warn("warn message", "phase", "gather")
	logger.Error("error message", "err", "boom")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "rank=0")
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "reaches=12")
	assert.Contains(t, output, "phase=gather")
	assert.Contains(t, output, "err=boom")
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// Must not panic or exit.
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	logger.Fatal("f")
}
