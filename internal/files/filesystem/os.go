package filesystem

import (
	"os"

	"github.com/unxutils/lsr/pkg/lsr"
)

// OSFileSystem implements Provider for the OS filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Lstat(path string) (FileInfo, error) {
	return os.Lstat(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) ReadDirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (p *OSFileSystem) Identity(path string) (lsr.FileID, error) {
	info, err := os.Stat(path)
	if err != nil {
		return lsr.FileID{}, err
	}

	if id, ok := identityFromInfo(info); ok {
		return id, nil
	}
	return identityFromPath(path)
}

var _ Provider = (*OSFileSystem)(nil)
