package gitlite_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// masterTip returns the hex hash stored in refs/heads/master
func masterTip(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, ".git", "refs", "heads", "master"))
	require.NoError(t, err)
	return strings.TrimSuffix(string(data), "\n")
}

func osMkdir(dir, name string) error {
	return os.MkdirAll(filepath.Join(dir, name), 0o755)
}

func testAuthor() object.Signature {
	return object.Signature{
		Name:  "John Doe",
		Email: "john@domain.tld",
		Time:  time.Unix(1566115917, 0).In(time.FixedZone("", -7*3600)),
	}
}

func TestCommit(t *testing.T) {
	t.Parallel()

	t.Run("first commit links index, tree, commit, and branch tip", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		writeFile(t, dir, "a.txt", "x")
		require.NoError(t, r.Add("a.txt"))

		c, err := r.Commit("m", testAuthor())
		require.NoError(t, err)

		// the first commit has no parent
		assert.Empty(t, c.ParentIDs())
		assert.Equal(t, "m", c.Message())

		// the commit object is in the odb and well formed
		o, err := r.GetObject(c.ID())
		require.NoError(t, err)
		require.Equal(t, object.TypeCommit, o.Type())
		kv := object.ParseCommitKV(o.Bytes())
		assert.Nil(t, kv.Get("parent"))
		require.Len(t, kv.Get("tree"), 1)

		// the tree has a single entry for a.txt pointing at the blob
		treeObj, err := r.GetObject(c.TreeID())
		require.NoError(t, err)
		tree, err := treeObj.AsTree()
		require.NoError(t, err)
		entries := tree.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "a.txt", entries[0].Path)
		assert.Equal(t, object.New(object.TypeBlob, []byte("x")).ID(), entries[0].ID)

		// master points at the commit
		tip := masterTip(t, dir)
		assert.Equal(t, c.ID().String(), tip)
	})

	t.Run("second commit has exactly one parent line", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		writeFile(t, dir, "a.txt", "x")
		require.NoError(t, r.Add("a.txt"))
		first, err := r.Commit("first", testAuthor())
		require.NoError(t, err)

		writeFile(t, dir, "b.txt", "y")
		require.NoError(t, r.Add("b.txt"))
		second, err := r.Commit("second", testAuthor())
		require.NoError(t, err)

		o, err := r.GetObject(second.ID())
		require.NoError(t, err)
		kv := object.ParseCommitKV(o.Bytes())
		require.Len(t, kv.Get("parent"), 1)
		assert.Equal(t, first.ID().String(), kv.Get("parent")[0])

		assert.Equal(t, second.ID().String(), masterTip(t, dir))
	})

	t.Run("committing an empty index produces an empty tree", func(t *testing.T) {
		t.Parallel()

		r, _ := newTestRepo(t)
		c, err := r.Commit("empty", testAuthor())
		require.NoError(t, err)
		assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", c.TreeID().String())
	})

	t.Run("nested paths cannot be committed", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		require.NoError(t, osMkdir(dir, "sub"))
		writeFile(t, dir, "sub/f.txt", "z")
		require.NoError(t, r.Add("sub/f.txt"))

		assert.Panics(t, func() {
			_, _ = r.Commit("nested", testAuthor())
		})
	})
}
