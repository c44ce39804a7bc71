package gitpath_test

import (
	"testing"

	"github.com/berserkin1337/git-lite/internal/gitpath"
	"github.com/stretchr/testify/assert"
)

func TestRefNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "refs/heads/master", gitpath.LocalBranch("master"))
	assert.Equal(t, "refs/tags/v1.0.0", gitpath.LocalTag("v1.0.0"))
	assert.Equal(t, "refs/heads/master", gitpath.Ref("heads/master"))
}
