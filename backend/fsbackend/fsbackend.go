// Package fsbackend contains an implementation of the backend.Backend
// interface for the filesystem
package fsbackend

import (
	"path/filepath"

	"github.com/berserkin1337/git-lite/backend"
	"github.com/berserkin1337/git-lite/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// we make sure the struct implements the interface
var _ backend.Backend = (*Backend)(nil)

// Backend is a Backend implementation that uses the filesystem to
// store data
type Backend struct {
	root string
	fs   afero.Fs
}

// New returns a new Backend object rooted at the given .git directory
func New(dotGitPath string) *Backend {
	return NewWithFs(dotGitPath, afero.NewOsFs())
}

// NewWithFs returns a new Backend object using the provided filesystem
func NewWithFs(dotGitPath string, fs afero.Fs) *Backend {
	return &Backend{
		root: dotGitPath,
		fs:   fs,
	}
}

// Close frees the resources used by the backend
func (b *Backend) Close() error {
	return nil
}

// Path returns the root path of the backend (the .git directory)
func (b *Backend) Path() string {
	return b.root
}

// Init initializes a repository.
// Running it on an already initialized repository succeeds and keeps
// the objects, refs, and index; the description and config files are
// rewritten with their default content
func (b *Backend) Init() error {
	// Create the directories
	dirs := []string{
		gitpath.ObjectsPath,
		gitpath.RefsTagsPath,
		gitpath.RefsHeadsPath,
		gitpath.BranchesPath,
	}
	for _, d := range dirs {
		fullPath := filepath.Join(b.root, d)
		if err := b.fs.MkdirAll(fullPath, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	// Create the files with the default content
	files := []struct {
		path    string
		content []byte
	}{
		{
			path:    gitpath.DescriptionPath,
			content: []byte("Unnamed repository; edit this file 'description' to name the repository.\n"),
		},
	}
	for _, f := range files {
		fullPath := filepath.Join(b.root, f.path)
		if err := afero.WriteFile(b.fs, fullPath, f.content, 0o644); err != nil {
			return xerrors.Errorf("could not create file %s: %w", f.path, err)
		}
	}

	if err := b.setDefaultCfg(); err != nil {
		return xerrors.Errorf("could not set the default config: %w", err)
	}

	return nil
}
