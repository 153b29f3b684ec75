package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// StdOutLogger implements the Logger interface using charmbracelet/log
type StdOutLogger struct {
	logger *log.Logger
}

// NewStdOutLogger creates a logger writing debug and above to stdout
func NewStdOutLogger() *StdOutLogger {
	return NewStdOutLoggerWithOptions(os.Stdout, log.DebugLevel, "")
}

// NewStdOutLoggerWithOptions creates a logger writing to w at the given level,
// prefix is prepended to every line when not empty
func NewStdOutLoggerWithOptions(w io.Writer, level log.Level, prefix string) *StdOutLogger {
	l := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: prefix,
	})

	return &StdOutLogger{logger: l}
}

// ParseLevel converts a level name to a log.Level, unknown names are info
func ParseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}

	return log.InfoLevel
}

var _ Logger = (*StdOutLogger)(nil)

func (l *StdOutLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

func (l *StdOutLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

func (l *StdOutLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

func (l *StdOutLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}
