package filesystem

import (
	"hash/fnv"
	"path/filepath"

	"github.com/unxutils/lsr/pkg/lsr"
)

// identityFromPath derives an identity from the fully-resolved path on
// platforms without device/inode numbers. Weaker than a real inode
// identity but stable enough to key loop detection: any two routes to
// the same directory resolve to the same physical path.
func identityFromPath(path string) (lsr.FileID, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return lsr.FileID{}, err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return lsr.FileID{}, err
	}

	h := fnv.New64a()
	h.Write([]byte(abs))
	return lsr.FileID{Ino: h.Sum64()}, nil
}
