// Package logger provides the logging interface shared by the tasksched
// components. The scheduler core takes a Logger so diagnostic output (wait
// announcements, skipped lines) stays separate from the task listing itself.
package logger

import "log"

// Logger is implemented by all tasksched logging backends.
type Logger interface {
	// Info logs an informational message (e.g., "waiting until 14:30").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "task list is empty").
	Warning(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})
}

// StandardLogger wraps a stdlib *log.Logger for console or file output.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// Info logs an informational message with an [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with a [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with an [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// NopLogger discards all messages. It is the default backend for quiet mode
// and for components whose caller supplied no logger.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (NopLogger) Info(format string, args ...interface{})    {}
func (NopLogger) Warning(format string, args ...interface{}) {}
func (NopLogger) Error(format string, args ...interface{})   {}

// Ensure implementations satisfy the Logger interface.
var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)
