package logger

// Logger is the diagnostic sink used by the support library, args are
// key value pairs. Nothing written here is ever seen by the host as a result.
type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Info(msg string, args ...interface{})  {}
func (NopLogger) Debug(msg string, args ...interface{}) {}
func (NopLogger) Warn(msg string, args ...interface{})  {}
func (NopLogger) Error(msg string, args ...interface{}) {}
