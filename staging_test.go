package gitlite_test

import (
	"os"
	"path/filepath"
	"testing"

	gitlite "github.com/berserkin1337/git-lite"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*gitlite.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	r, err := gitlite.InitRepository(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})
	return r, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("staging a file persists its blob and indexes it", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		writeFile(t, dir, "a.txt", "x")

		require.NoError(t, r.Add("a.txt"))

		idx, err := r.Index()
		require.NoError(t, err)
		require.Equal(t, 1, idx.Len())

		e := idx.Entries()[0]
		assert.Equal(t, "a.txt", e.Path)
		assert.Equal(t, uint32(1), e.FileSize)
		assert.Equal(t, uint16(len("a.txt")), e.Flags)
		assert.NotZero(t, e.MtimeSec)

		// the entry references the blob holding the file content
		blob := object.New(object.TypeBlob, []byte("x"))
		assert.Equal(t, blob.ID(), e.ID)

		o, err := r.GetObject(e.ID)
		require.NoError(t, err)
		assert.Equal(t, object.TypeBlob, o.Type())
		assert.Equal(t, []byte("x"), o.Bytes())
	})

	t.Run("re-staging an unchanged file produces a byte-equal index", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		writeFile(t, dir, "a.txt", "x")

		require.NoError(t, r.Add("a.txt"))
		first, err := os.ReadFile(filepath.Join(dir, ".git", "index"))
		require.NoError(t, err)

		require.NoError(t, r.Add("a.txt"))
		second, err := os.ReadFile(filepath.Join(dir, ".git", "index"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("staging a new path keeps existing entries", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		writeFile(t, dir, "b.txt", "bee")
		writeFile(t, dir, "a.txt", "ay")

		require.NoError(t, r.Add("b.txt"))
		require.NoError(t, r.Add("a.txt"))

		idx, err := r.Index()
		require.NoError(t, err)
		require.Equal(t, 2, idx.Len())
		// entries are sorted by path
		assert.Equal(t, "a.txt", idx.Entries()[0].Path)
		assert.Equal(t, "b.txt", idx.Entries()[1].Path)
	})

	t.Run("re-staging a changed file replaces its entry", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		writeFile(t, dir, "a.txt", "one")
		require.NoError(t, r.Add("a.txt"))

		writeFile(t, dir, "a.txt", "two")
		require.NoError(t, r.Add("a.txt"))

		idx, err := r.Index()
		require.NoError(t, err)
		require.Equal(t, 1, idx.Len())
		assert.Equal(t, object.New(object.TypeBlob, []byte("two")).ID(), idx.Entries()[0].ID)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		r, _ := newTestRepo(t)
		require.Error(t, r.Add("nope.txt"))
	})
}
