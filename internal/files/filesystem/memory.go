package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/unxutils/lsr/pkg/lsr"
)

// errTooManyLinks mirrors the kernel's ELOOP condition for symlink
// chains that never resolve.
var errTooManyLinks = errors.New("too many levels of symbolic links")

// memoryFileInfo implements fs.FileInfo for in-memory entries.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memNode is one entry of the virtual tree, keyed by its cleaned
// absolute path. Symlinks carry their target unresolved; resolution
// happens per lookup so loops behave like the real thing.
type memNode struct {
	path   string
	mode   fs.FileMode
	size   int64
	target string
	id     uint64
}

func (n *memNode) info() FileInfo {
	return &memoryFileInfo{
		name:    path.Base(n.path),
		size:    n.size,
		mode:    n.mode,
		modTime: time.Unix(0, 0),
	}
}

// MemoryFileSystem implements Provider for in-memory testing. Unlike a
// t.TempDir fixture it supports symlinks and directory loops on every
// platform, and hands out deterministic identities.
type MemoryFileSystem struct {
	nodes  map[string]*memNode
	root   string
	nextID uint64
}

// NewMemoryFileSystem creates an in-memory filesystem rooted at root.
// The root path is normalized to forward slashes.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes: make(map[string]*memNode),
		root:  root,
	}
	mfs.nodes[root] = &memNode{
		path: root,
		mode: 0o755 | fs.ModeDir,
		id:   mfs.nextIdentity(),
	}
	return mfs
}

// Root returns the filesystem's root path.
func (m *MemoryFileSystem) Root() string { return m.root }

// AddDir adds a directory at the path relative to the root, creating
// missing parents.
func (m *MemoryFileSystem) AddDir(relPath string) {
	m.addNode(relPath, &memNode{mode: 0o755 | fs.ModeDir})
}

// AddFile adds a regular file at the path relative to the root,
// creating missing parent directories.
func (m *MemoryFileSystem) AddFile(relPath, content string) {
	m.addNode(relPath, &memNode{mode: 0o644, size: int64(len(content))})
}

// AddSymlink adds a symlink at the path relative to the root. The
// target may be absolute (within the virtual tree) or relative to the
// link's directory; it need not exist.
func (m *MemoryFileSystem) AddSymlink(relPath, target string) {
	m.addNode(relPath, &memNode{mode: 0o777 | fs.ModeSymlink, target: target})
}

func (m *MemoryFileSystem) addNode(relPath string, node *memNode) {
	abs := path.Join(m.root, filepath.ToSlash(relPath))

	// Create missing parent directories.
	for dir := path.Dir(abs); dir != m.root && m.nodes[dir] == nil; dir = path.Dir(dir) {
		m.nodes[dir] = &memNode{
			path: dir,
			mode: 0o755 | fs.ModeDir,
			id:   m.nextIdentity(),
		}
	}

	node.path = abs
	node.id = m.nextIdentity()
	m.nodes[abs] = node
}

func (m *MemoryFileSystem) nextIdentity() uint64 {
	m.nextID++
	return m.nextID
}

func (m *MemoryFileSystem) Lstat(p string) (FileInfo, error) {
	node, err := m.resolve(p, false)
	if err != nil {
		return nil, err
	}
	return node.info(), nil
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	node, err := m.resolve(p, true)
	if err != nil {
		return nil, err
	}
	return node.info(), nil
}

func (m *MemoryFileSystem) ReadDirNames(p string) ([]string, error) {
	node, err := m.resolve(p, true)
	if err != nil {
		return nil, err
	}
	if !node.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: errors.New("not a directory")}
	}

	var names []string
	prefix := node.path + "/"
	for candidate := range m.nodes {
		rest, ok := strings.CutPrefix(candidate, prefix)
		if ok && rest != "" && !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryFileSystem) Identity(p string) (lsr.FileID, error) {
	node, err := m.resolve(p, true)
	if err != nil {
		return lsr.FileID{}, err
	}
	return lsr.FileID{Dev: 1, Ino: node.id}, nil
}

// resolve walks the path component by component, following symlinks in
// intermediate position always and in final position only when
// followFinal is set. Chains longer than lsr.MaxSymlinkHops fail the
// way ELOOP does on a real filesystem.
func (m *MemoryFileSystem) resolve(p string, followFinal bool) (*memNode, error) {
	clean := path.Clean(filepath.ToSlash(p))
	if clean != m.root && !strings.HasPrefix(clean, m.root+"/") {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}

	pending := splitComponents(strings.TrimPrefix(clean, m.root))
	current := m.root
	hops := 0

	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]

		switch c {
		case ".", "":
			continue
		case "..":
			if current != m.root {
				current = path.Dir(current)
			}
			continue
		}

		candidate := current + "/" + c
		node := m.nodes[candidate]
		if node == nil {
			return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
		}

		if node.mode&fs.ModeSymlink != 0 && (len(pending) > 0 || followFinal) {
			hops++
			if hops > lsr.MaxSymlinkHops {
				return nil, &fs.PathError{Op: "stat", Path: p, Err: errTooManyLinks}
			}

			target := filepath.ToSlash(node.target)
			if !path.IsAbs(target) {
				target = path.Join(current, target)
			}
			target = path.Clean(target)

			if target != m.root && !strings.HasPrefix(target, m.root+"/") {
				return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
			}
			pending = append(splitComponents(strings.TrimPrefix(target, m.root)), pending...)
			current = m.root
			continue
		}

		current = candidate
	}

	node := m.nodes[current]
	if node == nil {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return node, nil
}

func splitComponents(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

var _ Provider = (*MemoryFileSystem)(nil)
