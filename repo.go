// Package gitlite implements the core of a minimal git-compatible
// version control system: the object database, the staging index, and
// the commit formation logic
package gitlite

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/berserkin1337/git-lite/backend"
	"github.com/berserkin1337/git-lite/backend/fsbackend"
	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/berserkin1337/git-lite/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// List of errors returned by the Repository struct
var (
	ErrRepositoryNotExist           = errors.New("repository does not exist")
	ErrRepositoryUnsupportedVersion = errors.New("repository not supported")
	ErrRepositoryNotFound           = errors.New("no git repository found")
)

// Repository represent a git repository.
// A git repository is the .git/ folder inside a project, which tracks
// all changes made to files in the project, building a history over
// time
type Repository struct {
	repoRoot   string
	dotGitPath string
	dotGit     backend.Backend
	wt         afero.Fs
}

// Options contains all the optional data used to initialize or open
// a repository
type Options struct {
	// GitBackend represents the underlying backend to use to interact
	// with the odb.
	// By default the filesystem will be used
	GitBackend backend.Backend
	// WorkingTreeBackend represents the underlying backend to use to
	// interact with the working tree.
	// By default the filesystem will be used
	WorkingTreeBackend afero.Fs
}

func newRepository(repoPath string, opts Options) *Repository {
	r := &Repository{
		repoRoot:   repoPath,
		dotGitPath: filepath.Join(repoPath, gitpath.DotGitPath),
	}

	r.dotGit = opts.GitBackend
	if r.dotGit == nil {
		r.dotGit = fsbackend.New(r.dotGitPath)
	}

	r.wt = opts.WorkingTreeBackend
	if r.wt == nil {
		r.wt = afero.NewOsFs()
	}
	return r
}

// InitRepository initializes a new git repository by creating the .git
// directory in the given path, which is where almost everything that
// git stores and manipulates is located
// https://git-scm.com/book/en/v2/Git-Internals-Plumbing-and-Porcelain#ch10-git-internals
func InitRepository(repoPath string) (*Repository, error) {
	return InitRepositoryWithOptions(repoPath, Options{})
}

// InitRepositoryWithOptions initializes a new git repository by
// creating the .git directory in the given path.
// Re-running it on an existing repository is legal: the objects,
// branches, and index are kept, while HEAD, the description, and the
// config are rewritten with their default content
func InitRepositoryWithOptions(repoPath string, opts Options) (*Repository, error) {
	r := newRepository(repoPath, opts)

	if err := r.dotGit.Init(); err != nil {
		return nil, err
	}

	ref := ginternals.NewSymbolicReference(ginternals.Head, gitpath.LocalBranch(ginternals.Master))
	if err := r.dotGit.WriteReference(ref); err != nil {
		return nil, xerrors.Errorf("could not write HEAD: %w", err)
	}

	return r, nil
}

// OpenRepository loads an existing git repository by reading its
// config file, and returns a Repository instance
func OpenRepository(repoPath string) (*Repository, error) {
	return OpenRepositoryWithOptions(repoPath, Options{})
}

// OpenRepositoryWithOptions loads an existing git repository by reading
// its config file, and returns a Repository instance
func OpenRepositoryWithOptions(repoPath string, opts Options) (*Repository, error) {
	r := newRepository(repoPath, opts)

	// Load the config file
	// https://git-scm.com/docs/git-config
	cfg, err := r.dotGit.Config()
	if err != nil {
		return nil, xerrors.Errorf("could not read the config of the repo at %s: %w", repoPath, ErrRepositoryNotExist)
	}

	// Validate the config
	repoVersion := cfg.Section(backend.CfgCore).Key(backend.CfgCoreFormatVersion).MustInt(0)
	if repoVersion != 0 {
		return nil, ErrRepositoryUnsupportedVersion
	}

	return r, nil
}

// FindRepository walks the ancestors of the given directory until one
// of them contains a .git/ directory, and opens that repository.
// ErrRepositoryNotFound is returned if none of the ancestors is a
// repository
func FindRepository(from string) (*Repository, error) {
	path, err := filepath.Abs(from)
	if err != nil {
		return nil, xerrors.Errorf("could not get the absolute path of %s: %w", from, err)
	}

	for {
		fi, err := os.Stat(filepath.Join(path, gitpath.DotGitPath))
		if err == nil && fi.IsDir() {
			return OpenRepository(path)
		}

		parent := filepath.Dir(path)
		if parent == path {
			return nil, ErrRepositoryNotFound
		}
		path = parent
	}
}

// Close frees the resources used by the repository
func (r *Repository) Close() error {
	return r.dotGit.Close()
}

// GetObject returns the object matching the given Oid
func (r *Repository) GetObject(oid ginternals.Oid) (*object.Object, error) {
	return r.dotGit.Object(oid)
}

// WriteObject writes an object to the odb and returns its Oid
func (r *Repository) WriteObject(o *object.Object) (ginternals.Oid, error) {
	return r.dotGit.WriteObject(o)
}

// FindObject resolves a user-provided object name to an Oid.
// Only full hex names are supported for now; abbreviation expansion
// and kind verification are deferred
func (r *Repository) FindObject(name string, _ object.Type) (ginternals.Oid, error) {
	oid, err := ginternals.NewOidFromStr(name)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("not a valid object name %s: %w", name, err)
	}
	return oid, nil
}

// NewBlob creates, stores, and returns a new Blob object
func (r *Repository) NewBlob(data []byte) (*object.Blob, error) {
	b := object.NewBlob(data)
	if _, err := r.dotGit.WriteObject(b.ToObject()); err != nil {
		return nil, xerrors.Errorf("could not store the blob: %w", err)
	}
	return b, nil
}

// Index returns the current content of the staging area
func (r *Repository) Index() (*ginternals.Index, error) {
	return r.dotGit.Index()
}
