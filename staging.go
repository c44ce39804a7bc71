package gitlite

import (
	"os"
	"path/filepath"

	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Add stages the given paths: the content of each file is persisted as
// a blob in the odb, and the index gains (or updates) an entry binding
// the path to the blob and to the file's current metadata.
// Entries for paths that are not part of the request are preserved
// as-is.
// The paths are relative to the root of the working tree
func (r *Repository) Add(paths ...string) error {
	idx, err := r.dotGit.Index()
	if err != nil {
		return err
	}

	for _, p := range paths {
		relPath := filepath.ToSlash(filepath.Clean(p))
		fullPath := filepath.Join(r.repoRoot, filepath.FromSlash(relPath))

		data, err := afero.ReadFile(r.wt, fullPath)
		if err != nil {
			return xerrors.Errorf("could not read %s: %w", p, err)
		}

		// the blob has to be fully persisted before the index can
		// reference it
		b, err := r.NewBlob(data)
		if err != nil {
			return xerrors.Errorf("could not store the content of %s: %w", p, err)
		}

		fi, err := r.wt.Stat(fullPath)
		if err != nil {
			return xerrors.Errorf("could not stat %s: %w", p, err)
		}

		idx.Upsert(newIndexEntry(relPath, fi, b.ID()))
	}

	return r.dotGit.WriteIndex(idx)
}

// newIndexEntry builds an index entry out of a file's metadata
func newIndexEntry(path string, fi os.FileInfo, id ginternals.Oid) ginternals.IndexEntry {
	e := ginternals.NewIndexEntry(path, id)

	mtime := fi.ModTime()
	e.MtimeSec = uint32(mtime.Unix())
	e.MtimeNano = uint32(mtime.Nanosecond())
	// without anything better available the ctime defaults to the
	// mtime, fillSysMetadata overrides it where the OS reports one
	e.CtimeSec = e.MtimeSec
	e.CtimeNano = e.MtimeNano

	e.FileSize = uint32(fi.Size())
	e.Mode = posixMode(fi)

	fillSysMetadata(&e, fi)
	return e
}

// posixMode returns the raw POSIX mode bits of a regular file
func posixMode(fi os.FileInfo) uint32 {
	mode := uint32(0o100000) | uint32(fi.Mode().Perm())
	if fi.Mode()&os.ModeSymlink != 0 {
		mode = uint32(object.ModeSymLink)
	}
	return mode
}
