// Package filter decides per-name inclusion for directory listings.
//
// The rules run in strict precedence and the first failing rule is
// final: dotfile visibility (-a / -A / default), backup suffixes (-B),
// --ignore patterns, then --hide patterns. The asymmetry between
// --ignore and --hide is deliberate and mirrors the reference command:
// -a or -A suspends --hide but never --ignore.
package filter

import (
	"strings"

	"github.com/unxutils/lsr/pkg/lsr"
)

// Include reports whether a directory entry with the given name
// survives the listing rules. The caller offers every candidate name,
// including "." and "..".
func Include(name string, opts *lsr.Options) bool {
	switch {
	case opts.ShowAll:
		// Dotfiles stay, still subject to ignore/hide rules below.
	case opts.AlmostAll:
		if name == "." || name == ".." {
			return false
		}
	default:
		if strings.HasPrefix(name, ".") {
			return false
		}
	}

	if opts.IgnoreBackups && strings.HasSuffix(name, "~") {
		return false
	}

	for _, m := range opts.Ignore {
		if m.Match(name) {
			return false
		}
	}

	if opts.Hide != nil && !(opts.ShowAll || opts.AlmostAll) && opts.Hide.Match(name) {
		return false
	}

	return true
}
