package object_test

import (
	"testing"

	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitKV(t *testing.T) {
	t.Parallel()

	t.Run("regular commit", func(t *testing.T) {
		t.Parallel()

		payload := "tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n" +
			"parent 9785af758bcc96cd7237ba65eb2c9dd1ecaa3321\n" +
			"author John Doe <john@domain.tld> 1566115917 -0700\n" +
			"committer John Doe <john@domain.tld> 1566115917 -0700\n" +
			"\n" +
			"commit message\n"

		kv := object.ParseCommitKV([]byte(payload))

		assert.Equal(t, []string{"tree", "parent", "author", "committer", "data"}, kv.Keys())
		assert.Equal(t, []string{"4b825dc642cb6eb9a060e54bf8d69288fbee4904"}, kv.Get("tree"))
		assert.Equal(t, []string{"9785af758bcc96cd7237ba65eb2c9dd1ecaa3321"}, kv.Get("parent"))
		assert.Equal(t, "commit message\n", kv.Message())
	})

	t.Run("merge commit appends its parent lines", func(t *testing.T) {
		t.Parallel()

		payload := "tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n" +
			"parent 9785af758bcc96cd7237ba65eb2c9dd1ecaa3321\n" +
			"parent ce013625030ba8dba906f756967f9e9ca394464a\n" +
			"author John Doe <john@domain.tld> 1566115917 -0700\n" +
			"\n" +
			"merge\n"

		kv := object.ParseCommitKV([]byte(payload))
		require.Len(t, kv.Get("parent"), 2)
		assert.Equal(t, "9785af758bcc96cd7237ba65eb2c9dd1ecaa3321", kv.Get("parent")[0])
		assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", kv.Get("parent")[1])
		// the key only shows up once in the ordered list
		assert.Equal(t, []string{"tree", "parent", "author", "data"}, kv.Keys())
	})

	t.Run("continuation lines lose their leading space", func(t *testing.T) {
		t.Parallel()

		payload := "tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n" +
			"gpgsig -----BEGIN PGP SIGNATURE-----\n" +
			" line two\n" +
			" -----END PGP SIGNATURE-----\n" +
			"\n" +
			"signed\n"

		kv := object.ParseCommitKV([]byte(payload))
		require.Len(t, kv.Get("gpgsig"), 1)
		assert.Equal(t,
			"-----BEGIN PGP SIGNATURE-----\nline two\n-----END PGP SIGNATURE-----",
			kv.Get("gpgsig")[0])
		assert.Equal(t, "signed\n", kv.Message())
	})

	t.Run("initial commit has no parent key", func(t *testing.T) {
		t.Parallel()

		payload := "tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n" +
			"author John Doe <john@domain.tld> 1566115917 -0700\n" +
			"\n" +
			"first\n"

		kv := object.ParseCommitKV([]byte(payload))
		assert.Nil(t, kv.Get("parent"))
		assert.NotContains(t, kv.Keys(), "parent")
	})
}
