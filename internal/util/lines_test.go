package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buggy_1.sol")
	require.NoError(t, os.WriteFile(path, []byte("first\n  second  \nthird"), 0o644))

	assert.Equal(t, "first", ReadLine(path, 1))
	assert.Equal(t, "second", ReadLine(path, 2))
	assert.Equal(t, "third", ReadLine(path, 3))
	assert.Equal(t, "", ReadLine(path, 4))
	assert.Equal(t, "", ReadLine(path, 0))
	assert.Equal(t, "", ReadLine(filepath.Join(t.TempDir(), "nope.sol"), 1))
}
