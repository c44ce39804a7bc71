package readutil_test

import (
	"testing"

	"github.com/berserkin1337/git-lite/internal/readutil"
	"github.com/stretchr/testify/assert"
)

func TestReadTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		input    []byte
		to       byte
		expected []byte
	}{
		{"separator in the middle", []byte("blob 6"), ' ', []byte("blob")},
		{"separator first", []byte(" blob"), ' ', []byte{}},
		{"separator missing", []byte("blob"), ' ', nil},
		{"NUL separator", []byte("6\x00hello"), 0, []byte("6")},
		{"empty input", []byte{}, ' ', nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, readutil.ReadTo(tc.input, tc.to))
		})
	}
}
