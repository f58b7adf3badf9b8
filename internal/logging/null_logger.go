package logging

import "github.com/unxutils/lsr/pkg/lsr"

// NullLogger is a no-op logger that discards all log messages.
// Useful for tests and for callers that collect errors themselves.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

var _ lsr.Logger = (*NullLogger)(nil)
