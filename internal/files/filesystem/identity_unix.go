//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"

	"github.com/unxutils/lsr/pkg/lsr"
)

// identityFromInfo extracts the device and inode numbers on platforms
// that expose them through syscall.Stat_t.
func identityFromInfo(info fs.FileInfo) (lsr.FileID, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return lsr.FileID{}, false
	}
	return lsr.FileID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, true
}
