// Package logging provides concrete implementations of the lsr.Logger
// interface.
//
// Available implementations:
//   - ConsoleLogger: writes to stderr so diagnostics never mix with
//     listing output on stdout
//   - NullLogger: discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple
// goroutines.
package logging
