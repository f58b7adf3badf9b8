// Package resolve classifies entries, deciding per-symlink whether the
// link is treated as a file, a directory to expand, or reported as a
// link. The decision depends on where the entry came from: symlinks
// named on the command line follow different rules than symlinks
// discovered while enumerating a directory.
package resolve

import (
	"io/fs"

	"github.com/unxutils/lsr/internal/files/filesystem"
	"github.com/unxutils/lsr/pkg/lsr"
)

// Classify resolves the entry kind for path. commandLine records
// whether the path was given as an argument or discovered during
// enumeration. Classification never alters the reported name, only
// whether the entry can be expanded.
func Classify(p filesystem.Provider, path string, commandLine bool, opts *lsr.Options) (lsr.EntryKind, error) {
	info, err := p.Lstat(path)
	if err != nil {
		return lsr.KindFile, &lsr.AccessError{Path: path, Op: "stat", Err: err, CommandLine: commandLine}
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		if info.IsDir() {
			return lsr.KindDirectory, nil
		}
		return lsr.KindFile, nil
	}

	target, err := p.Stat(path)
	if err != nil {
		// Broken link. Under -H or -L a command-line argument must
		// reach its target; --dereference-command-line-symlink-to-dir
		// only ever applies to directory targets, so it falls back to
		// the link itself like a discovered entry would.
		if commandLine && (opts.DereferenceCommandLine || opts.DereferenceAlways) {
			return lsr.KindFile, &lsr.AccessError{Path: path, Op: "stat", Err: err, CommandLine: true}
		}
		return lsr.KindSymlinkFile, nil
	}

	if !target.IsDir() {
		return lsr.KindSymlinkFile, nil
	}

	switch {
	case commandLine && opts.Dereferencing():
		return lsr.KindDirectory, nil
	case commandLine && !opts.DirectoryOnly:
		// The documented default: a command-line symlink to a directory
		// is listed as that directory unless -d asks for the link itself.
		return lsr.KindDirectory, nil
	case !commandLine && opts.DereferenceAlways:
		return lsr.KindDirectory, nil
	default:
		return lsr.KindSymlinkDir, nil
	}
}
