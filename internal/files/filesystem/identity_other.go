//go:build !unix

package filesystem

import (
	"io/fs"

	"github.com/unxutils/lsr/pkg/lsr"
)

func identityFromInfo(info fs.FileInfo) (lsr.FileID, bool) {
	return lsr.FileID{}, false
}
