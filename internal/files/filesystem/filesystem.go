package filesystem

import (
	"io/fs"

	"github.com/unxutils/lsr/pkg/lsr"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while keeping
// a stable local type for the abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts the filesystem operations the listing engine
// needs. Two implementations exist: OSFileSystem for production and
// MemoryFileSystem for deterministic tests, including symlink and
// directory-loop scenarios that are awkward to stage on a real disk.
type Provider interface {
	// Lstat returns information about the path itself, never following
	// a final symlink.
	Lstat(path string) (FileInfo, error)

	// Stat returns information about the path's target, following
	// symlinks.
	Stat(path string) (FileInfo, error)

	// ReadDirNames returns the names of the direct children of the
	// directory, sorted by name. It never includes "." or "..".
	ReadDirNames(path string) ([]string, error)

	// Identity returns a stable identity for the path's target,
	// following symlinks. Identities are comparable within one
	// invocation and key directory-loop detection.
	Identity(path string) (lsr.FileID, error)
}
