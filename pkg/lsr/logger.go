package lsr

// Logger provides a pluggable logging interface for listing operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages. Non-fatal traversal diagnostics
	// (skipped entries, detected loops) are reported here.
	Error(format string, args ...interface{})
}
