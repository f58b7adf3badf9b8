package lsr

import (
	"errors"
	"fmt"
)

// ColorMode controls when the printer emits ANSI color sequences.
type ColorMode int

const (
	// ColorNever disables color output unconditionally.
	ColorNever ColorMode = iota
	// ColorAuto enables color only when stdout is a terminal and
	// NO_COLOR is unset.
	ColorAuto
	// ColorAlways enables color regardless of the output destination.
	ColorAlways
)

// ParseColorMode converts a --color flag value into a ColorMode.
// An empty value means "always", matching the reference command's
// behavior for a bare --color.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "never":
		return ColorNever, nil
	case "auto":
		return ColorAuto, nil
	case "always", "":
		return ColorAlways, nil
	default:
		return ColorNever, &OptionError{
			Option: "--color",
			Msg:    fmt.Sprintf("invalid argument %q; valid arguments are 'never', 'auto', 'always'", s),
		}
	}
}

// SortKey selects the ordering applied to sibling entries.
type SortKey int

const (
	// SortByName orders siblings by byte-wise name comparison.
	SortByName SortKey = iota
	// SortNone preserves enumeration order and disables
	// directories-first grouping.
	SortNone
)

// NameMatcher reports whether a single file name matches a compiled
// shell pattern. Implementations must be safe for concurrent use.
type NameMatcher interface {
	Match(name string) bool
}

// Options is an immutable snapshot of one invocation's listing
// behavior, built once from flags and configuration before any
// traversal starts.
type Options struct {
	// ShowAll includes names starting with ".", plus "." and ".." (-a).
	ShowAll bool

	// AlmostAll includes dotfiles but excludes exactly "." and ".." (-A).
	// ShowAll takes precedence when both are set.
	AlmostAll bool

	// IgnoreBackups excludes names ending in "~" (-B).
	IgnoreBackups bool

	// DirectoryOnly lists directory arguments as plain names instead of
	// their contents (-d).
	DirectoryOnly bool

	// DereferenceCommandLine follows symlinks given as arguments (-H).
	DereferenceCommandLine bool

	// DereferenceCommandLineSymlinkToDir follows argument symlinks only
	// when they target directories (--dereference-command-line-symlink-to-dir).
	DereferenceCommandLineSymlinkToDir bool

	// DereferenceAlways follows every symlink encountered (-L).
	DereferenceAlways bool

	// Recursive expands discovered subdirectories (-R).
	Recursive bool

	// GroupDirectoriesFirst partitions directories before other entries,
	// sorting each partition independently. Ignored under SortNone.
	GroupDirectoriesFirst bool

	// Sort selects the sibling ordering.
	Sort SortKey

	// Ignore holds compiled --ignore patterns; a name matching any of
	// them is excluded even under ShowAll or AlmostAll.
	Ignore []NameMatcher

	// Hide holds the compiled --hide pattern, or nil. Unlike Ignore it
	// is suspended by ShowAll and AlmostAll.
	Hide NameMatcher

	// Color controls printer colorization.
	Color ColorMode

	// Verbose enables diagnostic logging.
	Verbose bool
}

// Validate reports option combinations that can never produce a
// meaningful listing. It returns a multi-error when several problems
// occur at once.
func (o *Options) Validate() error {
	var errs []error

	for i, m := range o.Ignore {
		if m == nil {
			errs = append(errs, fmt.Errorf("ignore pattern %d is nil: %w", i, ErrInvalidOptions))
		}
	}

	return errors.Join(errs...)
}

// Dereferencing reports whether any dereference flag applies to
// command-line symlink arguments.
func (o *Options) Dereferencing() bool {
	return o.DereferenceCommandLine || o.DereferenceCommandLineSymlinkToDir || o.DereferenceAlways
}

// PathArgument is one operand exactly as the user gave it, plus the
// path the traverser actually visits.
type PathArgument struct {
	// Given is the operand as typed on the command line.
	Given string

	// Path is the filesystem path to visit. Usually identical to Given;
	// kept separate so callers may resolve relative operands themselves.
	Path string
}

// Arg builds a PathArgument whose visited path is the operand itself.
func Arg(operand string) PathArgument {
	return PathArgument{Given: operand, Path: operand}
}

// EntryKind classifies a listed entry. The four cases are exhaustive:
// symlinks are resolved to one of the two symlink kinds before an
// Entry is built, so consumers never see a raw "symlink" state.
type EntryKind int

const (
	// KindFile is a regular file or anything that is neither a
	// directory nor a symlink.
	KindFile EntryKind = iota
	// KindDirectory is a directory, or a symlink dereferenced to one.
	KindDirectory
	// KindSymlinkFile is a symlink to a non-directory or a broken symlink.
	KindSymlinkFile
	// KindSymlinkDir is a symlink to a directory that is reported, not
	// expanded.
	KindSymlinkDir
)

// String returns a short label for diagnostics.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlinkFile:
		return "symlink"
	case KindSymlinkDir:
		return "symlink-dir"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// IsDir reports whether the entry groups with directories for
// directories-first ordering.
func (k EntryKind) IsDir() bool {
	return k == KindDirectory || k == KindSymlinkDir
}

// Entry is one node of a listing tree. Children is non-nil exactly
// when the entry was classified as an expandable directory and the
// traversal rules called for expansion; an expanded empty directory
// carries a non-nil empty slice. Entries are never shared between
// trees and never mutated after the traversal that built them returns.
type Entry struct {
	// Name is the entry's own name, never rewritten by dereferencing.
	Name string

	// Path is the location the traverser visited for this entry.
	Path string

	// Kind is the resolved classification.
	Kind EntryKind

	// Children holds the sorted, filtered contents when expanded.
	Children []*Entry
}

// Expanded reports whether the entry's contents were enumerated.
func (e *Entry) Expanded() bool {
	return e.Children != nil
}

// FileID is a stable filesystem identity used for directory-loop
// detection. Path strings are not usable for this: two paths reach the
// same directory through symlinks.
type FileID struct {
	Dev uint64
	Ino uint64
}
