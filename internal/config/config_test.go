package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFindsConfigInParent(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".solidifi-bench.json"),
		[]byte(`{"contractsDir": "corpus", "tool": "smartfuzz"}`), 0o644))

	cfg, path, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".solidifi-bench.json"), path)
	assert.Equal(t, "corpus", cfg.ContractsDir)
	// fields absent from the file keep their defaults
	assert.Equal(t, Default().ReportsDir, cfg.ReportsDir)
}

func TestLoadWithoutConfigUsesDefaults(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, Default(), cfg)
}
