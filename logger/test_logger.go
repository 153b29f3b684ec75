package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestLogger buffers log entries and only writes them to the test output when
// the test fails. Entries can be inspected so tests can assert on diagnostics.
type TestLogger struct {
	t       *testing.T
	entries []Entry
	mu      sync.Mutex
}

// Entry is a single buffered log line
type Entry struct {
	Level     string
	Message   string
	Args      []interface{}
	Timestamp time.Time
}

func (e Entry) String() string {
	msg := fmt.Sprintf("[%s] [%s] %s", e.Timestamp.Format("15:04:05.000"), e.Level, e.Message)

	var parts []string
	for i := 0; i < len(e.Args); i += 2 {
		if i+1 < len(e.Args) {
			parts = append(parts, fmt.Sprintf("%v=%v", e.Args[i], e.Args[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v", e.Args[i]))
		}
	}

	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	return msg
}

// NewTestLogger creates a TestLogger flushed at test cleanup if t failed
func NewTestLogger(t *testing.T) *TestLogger {
	l := &TestLogger{t: t}

	t.Cleanup(l.flushIfFailed)

	return l
}

var _ Logger = (*TestLogger)(nil)

func (l *TestLogger) Info(msg string, args ...interface{}) {
	l.add("INFO", msg, args)
}

func (l *TestLogger) Debug(msg string, args ...interface{}) {
	l.add("DEBUG", msg, args)
}

func (l *TestLogger) Warn(msg string, args ...interface{}) {
	l.add("WARN", msg, args)
}

func (l *TestLogger) Error(msg string, args ...interface{}) {
	l.add("ERROR", msg, args)
}

// Entries returns a copy of the buffered entries
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), l.entries...)
}

// Count returns the number of entries at level whose message contains substr
func (l *TestLogger) Count(level, substr string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			n++
		}
	}

	return n
}

func (l *TestLogger) add(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		Level:     level,
		Message:   msg,
		Args:      args,
		Timestamp: time.Now(),
	})
}

func (l *TestLogger) flushIfFailed() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.t.Failed() {
		l.t.Log("=== Buffered Logs (test failed) ===")
		for _, e := range l.entries {
			l.t.Log(e.String())
		}
		l.t.Log("=== End Buffered Logs ===")
	}

	l.entries = l.entries[:0]
}
