package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unxutils/lsr/pkg/lsr"
)

func entry(name string, kind lsr.EntryKind) *lsr.Entry {
	return &lsr.Entry{Name: name, Kind: kind}
}

func names(entries []*lsr.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortByName(t *testing.T) {
	entries := []*lsr.Entry{
		entry("b.txt", lsr.KindFile),
		entry("A", lsr.KindDirectory),
		entry("a.txt", lsr.KindFile),
		entry("B", lsr.KindDirectory),
	}

	Sort(entries, &lsr.Options{})

	// Byte-wise: uppercase sorts before lowercase.
	require.Equal(t, []string{"A", "B", "a.txt", "b.txt"}, names(entries))
}

func TestSortGroupDirectoriesFirst(t *testing.T) {
	entries := []*lsr.Entry{
		entry("b.txt", lsr.KindFile),
		entry("A", lsr.KindDirectory),
		entry("a.txt", lsr.KindFile),
		entry("B", lsr.KindDirectory),
	}

	Sort(entries, &lsr.Options{GroupDirectoriesFirst: true})

	require.Equal(t, []string{"A", "B", "a.txt", "b.txt"}, names(entries))
}

func TestSortGroupsSymlinkDirsWithDirectories(t *testing.T) {
	entries := []*lsr.Entry{
		entry("zlink", lsr.KindSymlinkDir),
		entry("file", lsr.KindFile),
		entry("flink", lsr.KindSymlinkFile),
		entry("dir", lsr.KindDirectory),
	}

	Sort(entries, &lsr.Options{GroupDirectoriesFirst: true})

	require.Equal(t, []string{"dir", "zlink", "file", "flink"}, names(entries))
}

func TestSortNoneDisablesGrouping(t *testing.T) {
	entries := []*lsr.Entry{
		entry("b.txt", lsr.KindFile),
		entry("A", lsr.KindDirectory),
	}

	Sort(entries, &lsr.Options{Sort: lsr.SortNone, GroupDirectoriesFirst: true})

	require.Equal(t, []string{"b.txt", "A"}, names(entries))
}

func TestSortDotAndDotDotAreOrdinaryNames(t *testing.T) {
	entries := []*lsr.Entry{
		entry("..", lsr.KindDirectory),
		entry("zebra", lsr.KindFile),
		entry(".", lsr.KindDirectory),
		entry(".hidden", lsr.KindFile),
	}

	Sort(entries, &lsr.Options{})

	require.Equal(t, []string{".", "..", ".hidden", "zebra"}, names(entries))
}
