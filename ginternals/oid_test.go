package ginternals_test

import (
	"testing"

	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOidFromStr(t *testing.T) {
	t.Parallel()

	t.Run("valid oid", func(t *testing.T) {
		t.Parallel()

		oid, err := ginternals.NewOidFromStr("9b91da06e69613397b38e0808e0ba5ee6983251b")
		require.NoError(t, err)
		assert.Equal(t, "9b91da06e69613397b38e0808e0ba5ee6983251b", oid.String())
		assert.False(t, oid.IsZero())
	})

	t.Run("invalid chars should fail", func(t *testing.T) {
		t.Parallel()

		_, err := ginternals.NewOidFromStr("zzzzda06e69613397b38e0808e0ba5ee6983251b")
		require.Error(t, err)
	})

	t.Run("wrong size should fail", func(t *testing.T) {
		t.Parallel()

		_, err := ginternals.NewOidFromStr("9b91da06")
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrInvalidOid)
	})
}

func TestNewOidFromContent(t *testing.T) {
	t.Parallel()

	t.Run("oid is the sha1 of the content", func(t *testing.T) {
		t.Parallel()

		oid := ginternals.NewOidFromContent([]byte("blob 0\x00"))
		assert.Equal(t, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391", oid.String())
	})

	t.Run("same content means same oid", func(t *testing.T) {
		t.Parallel()

		a := ginternals.NewOidFromContent([]byte("some content"))
		b := ginternals.NewOidFromContent([]byte("some content"))
		assert.Equal(t, a, b)
	})
}

func TestOidBytes(t *testing.T) {
	t.Parallel()

	oid, err := ginternals.NewOidFromStr("ce013625030ba8dba906f756967f9e9ca394464a")
	require.NoError(t, err)

	out, err := ginternals.NewOidFromHex(oid.Bytes())
	require.NoError(t, err)
	assert.Equal(t, oid, out)
	assert.Len(t, oid.Bytes(), 20)
	assert.Len(t, oid.String(), 40)
}
