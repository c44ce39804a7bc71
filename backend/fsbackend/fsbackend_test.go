package fsbackend_test

import (
	"path/filepath"
	"testing"

	"github.com/berserkin1337/git-lite/backend/fsbackend"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*fsbackend.Backend, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	b := fsbackend.NewWithFs("/repo/.git", fs)
	require.NoError(t, b.Init())
	t.Cleanup(func() {
		require.NoError(t, b.Close())
	})
	return b, fs
}

func TestInit(t *testing.T) {
	t.Parallel()

	b, fs := newTestBackend(t)

	t.Run("creates the directory scaffold", func(t *testing.T) {
		for _, dir := range []string{
			"objects",
			"refs/heads",
			"refs/tags",
			"branches",
		} {
			fi, err := fs.Stat(filepath.Join(b.Path(), dir))
			require.NoError(t, err, "%s not created", dir)
			assert.True(t, fi.IsDir(), "%s should be a directory", dir)
		}
	})

	t.Run("creates the description file", func(t *testing.T) {
		data, err := afero.ReadFile(fs, filepath.Join(b.Path(), "description"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Unnamed repository")
	})

	t.Run("writes the default config", func(t *testing.T) {
		cfg, err := b.Config()
		require.NoError(t, err)

		core := cfg.Section("core")
		assert.Equal(t, "0", core.Key("repositoryformatversion").String())
		assert.Equal(t, "false", core.Key("filemode").String())
		assert.Equal(t, "false", core.Key("bare").String())
	})

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, b.Init())
	})
}
