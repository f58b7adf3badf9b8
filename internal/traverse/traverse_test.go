package traverse

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/unxutils/lsr/internal/files/filesystem"
	"github.com/unxutils/lsr/internal/glob"
	"github.com/unxutils/lsr/pkg/lsr"
)

func newFixture() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/vault")
	mfs.AddFile("b.txt", "b")
	mfs.AddFile("a.txt", "a")
	mfs.AddFile(".hidden", "h")
	mfs.AddFile("notes~", "n")
	mfs.AddDir("sub")
	mfs.AddFile("sub/y", "y")
	return mfs
}

func list(t *testing.T, mfs *filesystem.MemoryFileSystem, path string, opts lsr.Options) (*lsr.Entry, []error) {
	t.Helper()
	tr := New(mfs, nil)
	return tr.List(context.Background(), lsr.Arg(path), &opts)
}

func TestListDefault(t *testing.T) {
	root, errs := list(t, newFixture(), "/vault", lsr.Options{})
	require.Empty(t, errs)
	require.NotNil(t, root)
	require.Equal(t, lsr.KindDirectory, root.Kind)

	want := &lsr.Entry{
		Name: "/vault", Path: "/vault", Kind: lsr.KindDirectory,
		Children: []*lsr.Entry{
			{Name: "a.txt", Path: "/vault/a.txt", Kind: lsr.KindFile},
			{Name: "b.txt", Path: "/vault/b.txt", Kind: lsr.KindFile},
			{Name: "notes~", Path: "/vault/notes~", Kind: lsr.KindFile},
			{Name: "sub", Path: "/vault/sub", Kind: lsr.KindDirectory},
		},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("tree diff (-want +got):\n%s", diff)
	}
}

func TestListShowAllAndAlmostAll(t *testing.T) {
	mfs := newFixture()

	root, errs := list(t, mfs, "/vault", lsr.Options{ShowAll: true})
	require.Empty(t, errs)
	names := namesOf(root.Children)
	require.Equal(t, []string{".", "..", ".hidden", "a.txt", "b.txt", "notes~", "sub"}, names)

	root, errs = list(t, mfs, "/vault", lsr.Options{AlmostAll: true})
	require.Empty(t, errs)
	names = namesOf(root.Children)
	require.Equal(t, []string{".hidden", "a.txt", "b.txt", "notes~", "sub"}, names)
}

func TestListSyntheticDotEntriesAreNotExpanded(t *testing.T) {
	root, errs := list(t, newFixture(), "/vault", lsr.Options{ShowAll: true, Recursive: true})
	require.Empty(t, errs)

	for _, c := range root.Children {
		if c.Name == "." || c.Name == ".." {
			require.Equal(t, lsr.KindDirectory, c.Kind)
			require.Nil(t, c.Children, "%s must not be expanded", c.Name)
		}
	}
}

func TestListIgnoreVersusHide(t *testing.T) {
	mfs := newFixture()
	backups := glob.MustCompile("*~")

	// --ignore='*~' -a still excludes backups.
	root, errs := list(t, mfs, "/vault", lsr.Options{
		ShowAll: true,
		Ignore:  []lsr.NameMatcher{backups},
	})
	require.Empty(t, errs)
	require.NotContains(t, namesOf(root.Children), "notes~")

	// --hide='*~' -a does not.
	root, errs = list(t, mfs, "/vault", lsr.Options{
		ShowAll: true,
		Hide:    backups,
	})
	require.Empty(t, errs)
	require.Contains(t, namesOf(root.Children), "notes~")

	// --hide='*~' alone does.
	root, errs = list(t, mfs, "/vault", lsr.Options{Hide: backups})
	require.Empty(t, errs)
	require.NotContains(t, namesOf(root.Children), "notes~")
}

func TestListDirectoryOnly(t *testing.T) {
	root, errs := list(t, newFixture(), "/vault", lsr.Options{DirectoryOnly: true})
	require.Empty(t, errs)
	require.Equal(t, lsr.KindDirectory, root.Kind)
	require.Nil(t, root.Children)
	require.False(t, root.Expanded())
}

func TestListFileArgument(t *testing.T) {
	root, errs := list(t, newFixture(), "/vault/a.txt", lsr.Options{})
	require.Empty(t, errs)
	require.Equal(t, lsr.KindFile, root.Kind)
	require.Nil(t, root.Children)
}

func TestListRecursive(t *testing.T) {
	root, errs := list(t, newFixture(), "/vault", lsr.Options{Recursive: true})
	require.Empty(t, errs)

	sub := findChild(root, "sub")
	require.NotNil(t, sub)
	require.True(t, sub.Expanded())
	require.Equal(t, []string{"y"}, namesOf(sub.Children))

	// Only one level down exists; y is a file, not expanded.
	require.Nil(t, sub.Children[0].Children)
}

func TestListNonRecursiveDoesNotExpandSubdirectories(t *testing.T) {
	root, errs := list(t, newFixture(), "/vault", lsr.Options{})
	require.Empty(t, errs)

	sub := findChild(root, "sub")
	require.NotNil(t, sub)
	require.Nil(t, sub.Children)
}

func TestListEmptyDirectoryHasNonNilChildren(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/vault")
	mfs.AddDir("empty")

	root, errs := list(t, mfs, "/vault/empty", lsr.Options{})
	require.Empty(t, errs)
	require.NotNil(t, root.Children)
	require.Len(t, root.Children, 0)
	require.True(t, root.Expanded())
}

func TestListCommandLineSymlinkToDirectory(t *testing.T) {
	mfs := newFixture()
	mfs.AddSymlink("subln", "sub")

	// No dereference flag, no -d: the target's contents are listed,
	// under the link's own name.
	root, errs := list(t, mfs, "/vault/subln", lsr.Options{})
	require.Empty(t, errs)
	require.Equal(t, "/vault/subln", root.Name)
	require.Equal(t, lsr.KindDirectory, root.Kind)
	require.Equal(t, []string{"y"}, namesOf(root.Children))

	// Same argument with -d: only the link itself.
	root, errs = list(t, mfs, "/vault/subln", lsr.Options{DirectoryOnly: true})
	require.Empty(t, errs)
	require.Equal(t, lsr.KindSymlinkDir, root.Kind)
	require.Nil(t, root.Children)
}

func TestListLoopDetection(t *testing.T) {
	mfs := newFixture()
	mfs.AddFile("x", "x")
	mfs.AddSymlink("sub/back", "/vault")

	root, errs := list(t, mfs, "/vault", lsr.Options{
		Recursive:         true,
		DereferenceAlways: true,
	})
	require.NotNil(t, root)

	// Exactly one loop diagnostic, scoped to the cycling branch.
	require.Len(t, errs, 1)
	var loopErr *lsr.LoopError
	require.True(t, errors.As(errs[0], &loopErr))
	require.Equal(t, "/vault/sub/back", loopErr.Path)
	require.Equal(t, "/vault", loopErr.Dir)

	// The sibling y is still reported, and the looping entry itself
	// appears without children.
	sub := findChild(root, "sub")
	require.NotNil(t, sub)
	require.Equal(t, []string{"back", "y"}, namesOf(sub.Children))

	back := findChild(sub, "back")
	require.Equal(t, lsr.KindDirectory, back.Kind)
	require.Nil(t, back.Children)

	y := findChild(sub, "y")
	require.NotNil(t, y)
}

func TestListSiblingRevisitsAreNotLoops(t *testing.T) {
	mfs := newFixture()
	// Two links to the same directory are not a cycle: neither is an
	// ancestor of the other.
	mfs.AddSymlink("first", "sub")
	mfs.AddSymlink("second", "sub")

	_, errs := list(t, mfs, "/vault", lsr.Options{
		Recursive:         true,
		DereferenceAlways: true,
	})
	require.Empty(t, errs)
}

func TestListAllIndependentRoots(t *testing.T) {
	mfs := newFixture()
	tr := New(mfs, nil)

	args := []lsr.PathArgument{
		lsr.Arg("/vault/missing"),
		lsr.Arg("/vault/sub"),
	}
	listings, errs := tr.ListAll(context.Background(), args, &lsr.Options{})

	require.Len(t, listings, 2)
	require.Nil(t, listings[0].Root, "inaccessible root yields no entry")
	require.NotNil(t, listings[1].Root, "other roots still succeed")
	require.Equal(t, []string{"y"}, namesOf(listings[1].Root.Children))

	require.Len(t, errs, 1)
	var accessErr *lsr.AccessError
	require.True(t, errors.As(errs[0], &accessErr))
	require.True(t, accessErr.CommandLine)
	require.Equal(t, lsr.ExitSerious, lsr.StatusForErrors(errs))
}

func TestListCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := New(newFixture(), nil)
	root, errs := tr.List(ctx, lsr.Arg("/vault"), &lsr.Options{})

	require.NotNil(t, root)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], lsr.ErrPartialListing)
	require.Equal(t, lsr.ExitMinor, lsr.StatusForErrors(errs))
}

func TestListGroupDirectoriesFirst(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/vault")
	mfs.AddFile("b.txt", "")
	mfs.AddDir("A")
	mfs.AddFile("a.txt", "")
	mfs.AddDir("B")

	root, errs := list(t, mfs, "/vault", lsr.Options{GroupDirectoriesFirst: true})
	require.Empty(t, errs)
	require.Equal(t, []string{"A", "B", "a.txt", "b.txt"}, namesOf(root.Children))
}

// faultyFS wraps a provider and fails selected operations on a single
// path, standing in for permission problems and entries that vanish
// between enumeration and stat.
type faultyFS struct {
	filesystem.Provider
	failLstat   string
	failReadDir string
}

func (f *faultyFS) Lstat(path string) (filesystem.FileInfo, error) {
	if path == f.failLstat {
		return nil, errors.New("no such file or directory")
	}
	return f.Provider.Lstat(path)
}

func (f *faultyFS) ReadDirNames(path string) ([]string, error) {
	if path == f.failReadDir {
		return nil, errors.New("permission denied")
	}
	return f.Provider.ReadDirNames(path)
}

func TestListDotEntriesAreNotStatted(t *testing.T) {
	// The parent of the listing root is not reachable through the
	// provider; ".." must still be listed under -a without touching it.
	fsys := &faultyFS{Provider: newFixture(), failLstat: "/"}
	tr := New(fsys, nil)

	root, errs := tr.List(context.Background(), lsr.Arg("/vault"), &lsr.Options{ShowAll: true})
	require.Empty(t, errs)
	require.Contains(t, namesOf(root.Children), ".")
	require.Contains(t, namesOf(root.Children), "..")
}

func TestListUnreadableRootIsFatal(t *testing.T) {
	fsys := &faultyFS{Provider: newFixture(), failReadDir: "/vault"}
	tr := New(fsys, nil)

	root, errs := tr.List(context.Background(), lsr.Arg("/vault"), &lsr.Options{})
	require.Nil(t, root, "an unlistable command-line directory yields no entry")

	require.Len(t, errs, 1)
	var accessErr *lsr.AccessError
	require.True(t, errors.As(errs[0], &accessErr))
	require.True(t, accessErr.CommandLine)
	require.Equal(t, "readdir", accessErr.Op)
	require.Equal(t, lsr.ExitSerious, lsr.StatusForErrors(errs))
}

func TestListUnreadableSubdirectoryIsNotFatal(t *testing.T) {
	fsys := &faultyFS{Provider: newFixture(), failReadDir: "/vault/sub"}
	tr := New(fsys, nil)

	root, errs := tr.List(context.Background(), lsr.Arg("/vault"), &lsr.Options{Recursive: true})
	require.NotNil(t, root)

	// The unreadable directory still appears in its parent's listing,
	// just without contents.
	sub := findChild(root, "sub")
	require.NotNil(t, sub)
	require.Nil(t, sub.Children)

	require.Len(t, errs, 1)
	var accessErr *lsr.AccessError
	require.True(t, errors.As(errs[0], &accessErr))
	require.False(t, accessErr.CommandLine)
	require.Equal(t, lsr.ExitMinor, lsr.StatusForErrors(errs))
}

func TestListVanishedEntryIsSkipped(t *testing.T) {
	fsys := &faultyFS{Provider: newFixture(), failLstat: "/vault/a.txt"}
	tr := New(fsys, nil)

	root, errs := tr.List(context.Background(), lsr.Arg("/vault"), &lsr.Options{})
	require.NotNil(t, root)
	require.Equal(t, []string{"b.txt", "notes~", "sub"}, namesOf(root.Children))

	require.Len(t, errs, 1)
	var accessErr *lsr.AccessError
	require.True(t, errors.As(errs[0], &accessErr))
	require.Equal(t, "/vault/a.txt", accessErr.Path)
	require.False(t, accessErr.CommandLine)
	require.Equal(t, lsr.ExitMinor, lsr.StatusForErrors(errs))
}

func namesOf(entries []*lsr.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func findChild(e *lsr.Entry, name string) *lsr.Entry {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
