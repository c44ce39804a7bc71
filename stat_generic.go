//go:build !linux

package gitlite

import (
	"os"

	"github.com/berserkin1337/git-lite/ginternals"
)

// fillSysMetadata is a no-op on systems where we don't know how to map
// the raw stat data; the portable defaults stay in place
func fillSysMetadata(e *ginternals.IndexEntry, fi os.FileInfo) {
}
