package fsbackend

import (
	"os"
	"path/filepath"

	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// indexPath returns the path of the index file
func (b *Backend) indexPath() string {
	return filepath.Join(b.root, gitpath.IndexPath)
}

// Index returns the content of the index file.
// A repo that has never staged anything has no index file, in which
// case an empty index is returned
func (b *Backend) Index() (*ginternals.Index, error) {
	data, err := afero.ReadFile(b.fs, b.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return ginternals.NewIndex(nil), nil
		}
		return nil, xerrors.Errorf("could not read the index file: %w", err)
	}

	idx, err := ginternals.NewIndexFromBytes(data)
	if err != nil {
		return nil, xerrors.Errorf("could not parse the index file: %w", err)
	}
	return idx, nil
}

// WriteIndex persists the index file, replacing the previous one
func (b *Backend) WriteIndex(idx *ginternals.Index) error {
	if err := afero.WriteFile(b.fs, b.indexPath(), idx.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("could not persist the index to disk: %w", err)
	}
	return nil
}
