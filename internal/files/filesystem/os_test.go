package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_StatAndReadDirNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	p := NewOSFileSystem()

	info, err := p.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	names, err := p.ReadDirNames(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt", "sub"}, names)

	_, err = p.Stat(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFileSystem_LstatSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	p := NewOSFileSystem()

	info, err := p.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&fs.ModeSymlink)

	info, err = p.Stat(link)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestOSFileSystem_IdentityFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	p := NewOSFileSystem()

	direct, err := p.Identity(target)
	require.NoError(t, err)
	viaLink, err := p.Identity(link)
	require.NoError(t, err)
	require.Equal(t, direct, viaLink)

	other, err := p.Identity(dir)
	require.NoError(t, err)
	require.NotEqual(t, direct, other)
}
