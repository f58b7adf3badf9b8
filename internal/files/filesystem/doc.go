// Package filesystem provides the filesystem abstraction behind the
// listing engine.
//
// The Provider interface exposes exactly the operations the traverser
// and link resolver need: Lstat, Stat, directory enumeration, and a
// stable file identity for loop detection. Two implementations are
// available:
//   - OSFileSystem: the real filesystem, with device/inode identities
//     where the platform exposes them
//   - MemoryFileSystem: an in-memory tree supporting files,
//     directories, and symlinks, for deterministic tests
package filesystem
