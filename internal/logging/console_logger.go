package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/unxutils/lsr/pkg/lsr"
)

// ConsoleLogger writes log messages to stderr, keeping stdout clean
// for listing output. Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	w       io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose, w: os.Stderr}
}

// NewConsoleLoggerTo is like NewConsoleLogger with an explicit writer,
// for capturing diagnostics in tests.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose, w: w}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Error logs error messages, prefixed with the program name the way
// the reference command reports per-entry problems.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "lsr: "+format+"\n", args...)
}

var _ lsr.Logger = (*ConsoleLogger)(nil)
