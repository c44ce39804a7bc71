package gitlite

import (
	"errors"

	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/berserkin1337/git-lite/internal/gitpath"
	"golang.org/x/xerrors"
)

// Commit records the content of the staging area as a new commit on
// master:
//   - a tree object is synthesized from the index and persisted
//   - the current tip of master, if there is one, becomes the parent
//   - the commit object is persisted
//   - the tip of master is overwritten with the new commit
//
// The writes happen in that order, so a failure part-way through
// leaves at most an orphan object behind
func (r *Repository) Commit(message string, author object.Signature) (*object.Commit, error) {
	idx, err := r.dotGit.Index()
	if err != nil {
		return nil, err
	}

	tree, err := r.NewTreeBuilderFromIndex(idx).Write()
	if err != nil {
		return nil, xerrors.Errorf("could not write the tree: %w", err)
	}

	// the very first commit has no parent
	var parents []ginternals.Oid
	ref, err := r.dotGit.Reference(gitpath.LocalBranch(ginternals.Master))
	switch {
	case err == nil:
		parents = append(parents, ref.Target())
	case errors.Is(err, ginternals.ErrRefNotFound):
	default:
		return nil, xerrors.Errorf("could not read the current tip of %s: %w", ginternals.Master, err)
	}

	c := object.NewCommit(tree.ID(), author, &object.CommitOptions{
		Message:   message,
		ParentsID: parents,
	})
	if _, err := r.dotGit.WriteObject(c.ToObject()); err != nil {
		return nil, xerrors.Errorf("could not write the commit: %w", err)
	}

	tip := ginternals.NewReference(gitpath.LocalBranch(ginternals.Master), c.ID())
	if err := r.dotGit.WriteReference(tip); err != nil {
		return nil, xerrors.Errorf("could not update the tip of %s: %w", ginternals.Master, err)
	}

	return c, nil
}
