// Package order imposes the total order over sibling entries.
//
// The default key is byte-wise name comparison, deliberately not
// locale collation. --group-directories-first adds a primary key that
// puts directories (and symlinks to directories) ahead of everything
// else, with the name order applied within each partition; --sort=none
// disables ordering entirely, grouping included.
package order

import (
	"slices"
	"strings"

	"github.com/unxutils/lsr/pkg/lsr"
)

// Sort orders sibling entries in place. "." and ".." carry no special
// weight; they sort as ordinary names.
func Sort(entries []*lsr.Entry, opts *lsr.Options) {
	if opts.Sort == lsr.SortNone {
		return
	}

	if opts.GroupDirectoriesFirst {
		slices.SortStableFunc(entries, func(a, b *lsr.Entry) int {
			if d := groupRank(a) - groupRank(b); d != 0 {
				return d
			}
			return strings.Compare(a.Name, b.Name)
		})
		return
	}

	slices.SortStableFunc(entries, func(a, b *lsr.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func groupRank(e *lsr.Entry) int {
	if e.Kind.IsDir() {
		return 0
	}
	return 1
}
