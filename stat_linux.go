//go:build linux

package gitlite

import (
	"os"
	"syscall"

	"github.com/berserkin1337/git-lite/ginternals"
)

// fillSysMetadata copies the stat(2) fields the index tracks but that
// os.FileInfo doesn't expose portably: ctime, dev, ino, uid, gid, and
// the raw mode bits.
// Filesystems that don't report a Stat_t (like in-memory ones used in
// tests) leave the portable defaults untouched
func fillSysMetadata(e *ginternals.IndexEntry, fi os.FileInfo) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return
	}

	e.CtimeSec = uint32(st.Ctim.Sec)
	e.CtimeNano = uint32(st.Ctim.Nsec)
	e.Dev = uint32(st.Dev)
	e.Ino = uint32(st.Ino)
	e.Mode = st.Mode
	e.UID = st.Uid
	e.GID = st.Gid
}
