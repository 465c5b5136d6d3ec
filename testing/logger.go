package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// NewTestLogger creates a Logger that routes structured log output through
// t.Log, so runner and transport logs show up next to test failures.
func NewTestLogger(t *testing.T) types.Logger {
	return &testLogger{t: t}
}

type testLogger struct {
	t *testing.T
}

var _ types.Logger = (*testLogger)(nil)

// render flattens keysAndValues into key=value pairs. A trailing unpaired
// key is rendered as key=<missing>.
func render(level, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			fmt.Fprintf(&b, " %v=<missing>", keysAndValues[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}

	return b.String()
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(render("DEBUG", msg, keysAndValues))
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(render("INFO", msg, keysAndValues))
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(render("WARN", msg, keysAndValues))
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(render("ERROR", msg, keysAndValues))
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatal(render("FATAL", msg, keysAndValues))
}
