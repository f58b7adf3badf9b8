package lsr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios. Typed errors below
// wrap these so callers can classify with errors.Is while still
// extracting detail with errors.As.
var (
	// ErrBadPattern indicates a malformed shell glob pattern.
	ErrBadPattern = errors.New("bad pattern")

	// ErrInvalidOptions indicates an unusable Options value.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrPartialListing indicates a traversal aborted by cancellation;
	// output built before the abort is intact and printable.
	ErrPartialListing = errors.New("partial listing")
)

// PatternError reports a malformed glob pattern. It is always raised
// at compile time, before any traversal starts.
type PatternError struct {
	// Pattern is the offending pattern as given.
	Pattern string
	// Pos is the byte offset of the problem.
	Pos int
	// Msg describes the problem.
	Msg string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s at offset %d", e.Pattern, e.Msg, e.Pos)
}

func (e *PatternError) Unwrap() error { return ErrBadPattern }

// OptionError reports an unusable flag or configuration value.
type OptionError struct {
	// Option names the flag or config key, e.g. "--color".
	Option string
	// Msg describes the problem.
	Msg string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Option, e.Msg)
}

func (e *OptionError) Unwrap() error { return ErrInvalidOptions }

// AccessError reports a failure to stat or enumerate a path. Whether
// it is fatal depends on where it occurred: a command-line argument
// that cannot be accessed yields no entry and exit status 2, while a
// failure discovered mid-recursion omits one entry, is logged, and
// contributes exit status 1.
type AccessError struct {
	// Path is the inaccessible path.
	Path string
	// Op is the failing operation, e.g. "stat" or "readdir".
	Op string
	// Err is the underlying filesystem error.
	Err error
	// CommandLine records whether Path was given as an argument.
	CommandLine bool
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// LoopError reports a directory cycle: expanding Path would re-enter
// Dir, an ancestor on the current traversal chain. Only the cycling
// subtree is skipped.
type LoopError struct {
	// Path is the entry whose expansion would cycle.
	Path string
	// Dir is the ancestor directory the cycle returns to.
	Dir string
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("%s: not listing already-listed directory %s", e.Path, e.Dir)
}

// ExitCodeForError returns the exit code for a single error. Returns
// ExitSuccess for nil, semantic codes for classified errors, and
// ExitSerious for anything unrecognized, since an unclassified failure
// at this level means the command could not do its job.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var accessErr *AccessError
	if errors.As(err, &accessErr) {
		if accessErr.CommandLine {
			return ExitSerious
		}
		return ExitMinor
	}

	var loopErr *LoopError
	if errors.As(err, &loopErr) {
		return ExitSerious
	}

	switch {
	case errors.Is(err, ErrBadPattern),
		errors.Is(err, ErrInvalidOptions):
		return ExitSerious
	case errors.Is(err, ErrPartialListing):
		return ExitMinor
	}

	return ExitSerious
}

// StatusForErrors aggregates per-root and mid-recursion errors into
// the final exit status: the maximum severity observed. One failing
// root never masks or blocks the others; it only raises the status.
func StatusForErrors(errs []error) int {
	status := ExitSuccess
	for _, err := range errs {
		if code := ExitCodeForError(err); code > status {
			status = code
		}
	}
	return status
}

// ExitError carries a precomputed exit status through an error return.
// The CLI layer uses it after diagnostics have already been printed,
// so it renders to an empty message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
