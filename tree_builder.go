package gitlite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/berserkin1337/git-lite/backend"
	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/ginternals/object"
)

// TreeBuilder is used to build trees
type TreeBuilder struct {
	Backend backend.Backend
	entries map[string]object.TreeEntry
}

// NewTreeBuilder creates a new empty tree builder
func (r *Repository) NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		Backend: r.dotGit,
	}
}

// NewTreeBuilderFromIndex creates a tree builder containing one entry
// per staged file.
// Only top-level paths are supported: trying to build a tree out of an
// index that stages a nested path is a bug in the caller, and panics
func (r *Repository) NewTreeBuilderFromIndex(idx *ginternals.Index) *TreeBuilder {
	tb := r.NewTreeBuilder()
	tb.entries = map[string]object.TreeEntry{}

	for _, e := range idx.Entries() {
		if strings.ContainsRune(e.Path, '/') {
			panic(fmt.Sprintf("cannot build a tree out of nested path %q, only top-level paths are supported", e.Path))
		}
		tb.entries[e.Path] = object.TreeEntry{
			Mode: object.TreeObjectMode(e.Mode),
			Path: e.Path,
			ID:   e.ID,
		}
	}
	return tb
}

// Insert inserts a new object in a tree
func (tb *TreeBuilder) Insert(path string, oid ginternals.Oid, mode object.TreeObjectMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid mode %o", mode)
	}

	o, err := tb.Backend.Object(oid)
	if err != nil {
		return fmt.Errorf("cannot verify object: %w", err)
	}

	if o.Type() != object.TypeBlob && o.Type() != object.TypeTree {
		return fmt.Errorf("unexpected object %s: %w", o.Type().String(), object.ErrObjectInvalid)
	}

	e := object.TreeEntry{
		Mode: mode,
		Path: path,
		ID:   oid,
	}

	if tb.entries == nil {
		tb.entries = map[string]object.TreeEntry{}
	}
	tb.entries[path] = e
	return nil
}

// Remove removes an object from the tree
func (tb *TreeBuilder) Remove(path string) {
	if tb.entries == nil {
		return
	}
	delete(tb.entries, path)
}

// Write creates and persists a new Tree object
func (tb *TreeBuilder) Write() (*object.Tree, error) {
	// We need to order all our entries alphabetically
	// We're going to extract the paths of the map
	// and just loop over the keys instead of the entries
	paths := make([]string, 0, len(tb.entries))
	for p := range tb.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	entries := make([]object.TreeEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, tb.entries[p])
	}

	t := object.NewTree(entries)
	o := t.ToObject()
	if _, err := tb.Backend.WriteObject(o); err != nil {
		return nil, fmt.Errorf("could not write the object to the odb: %w", err)
	}
	return o.AsTree()
}
