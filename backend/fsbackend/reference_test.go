package fsbackend_test

import (
	"path/filepath"
	"testing"

	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReference(t *testing.T) {
	t.Parallel()

	t.Run("oid reference holds the hex hash and nothing else", func(t *testing.T) {
		t.Parallel()

		b, fs := newTestBackend(t)
		oid, err := ginternals.NewOidFromStr("9b91da06e69613397b38e0808e0ba5ee6983251b")
		require.NoError(t, err)

		require.NoError(t, b.WriteReference(ginternals.NewReference("refs/heads/master", oid)))

		data, err := afero.ReadFile(fs, filepath.Join(b.Path(), "refs", "heads", "master"))
		require.NoError(t, err)
		assert.Equal(t, oid.String(), string(data))
	})

	t.Run("writing twice overwrites", func(t *testing.T) {
		t.Parallel()

		b, _ := newTestBackend(t)
		first, err := ginternals.NewOidFromStr("9b91da06e69613397b38e0808e0ba5ee6983251b")
		require.NoError(t, err)
		second, err := ginternals.NewOidFromStr("ce013625030ba8dba906f756967f9e9ca394464a")
		require.NoError(t, err)

		require.NoError(t, b.WriteReference(ginternals.NewReference("refs/heads/master", first)))
		require.NoError(t, b.WriteReference(ginternals.NewReference("refs/heads/master", second)))

		ref, err := b.Reference("refs/heads/master")
		require.NoError(t, err)
		assert.Equal(t, second, ref.Target())
	})

	t.Run("invalid name is rejected", func(t *testing.T) {
		t.Parallel()

		b, _ := newTestBackend(t)
		err := b.WriteReference(ginternals.NewReference("refs/heads/", ginternals.NullOid))
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrRefNameInvalid)
	})
}

func TestReference(t *testing.T) {
	t.Parallel()

	t.Run("symbolic HEAD resolves through the branch", func(t *testing.T) {
		t.Parallel()

		b, _ := newTestBackend(t)
		oid, err := ginternals.NewOidFromStr("9b91da06e69613397b38e0808e0ba5ee6983251b")
		require.NoError(t, err)

		require.NoError(t, b.WriteReference(ginternals.NewSymbolicReference("HEAD", "refs/heads/master")))
		require.NoError(t, b.WriteReference(ginternals.NewReference("refs/heads/master", oid)))

		ref, err := b.Reference("HEAD")
		require.NoError(t, err)
		assert.Equal(t, ginternals.SymbolicReference, ref.Type())
		assert.Equal(t, oid, ref.Target())
	})

	t.Run("missing reference", func(t *testing.T) {
		t.Parallel()

		b, _ := newTestBackend(t)
		_, err := b.Reference("refs/heads/nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrRefNotFound)
	})
}
