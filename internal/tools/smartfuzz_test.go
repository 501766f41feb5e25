package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buggy_1.sol.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSmartFuzz(t *testing.T) {
	path := writeReport(t, `{
		"bug-2": {"line_number": 40, "bug_type": "REENTRANCY", "tx": "0xabc"},
		"bug-1": {"loc": 7, "bug_type": "ARITHMETIC_OVERFLOW"}
	}`)

	bugs, err := LoadSmartFuzz(path)
	require.NoError(t, err)
	require.Len(t, bugs, 2)

	assert.Equal(t, model.CategoryOverflowUnderflow, bugs[0].Category)
	assert.Equal(t, 7, bugs[0].Line)
	assert.Nil(t, bugs[0].Extra)

	assert.Equal(t, model.CategoryReentrancy, bugs[1].Category)
	assert.Equal(t, 40, bugs[1].Line)
	assert.Equal(t, "0xabc", bugs[1].Extra["tx"])
}

func TestLoadSmartFuzzUnmappedCategoryPassesThrough(t *testing.T) {
	path := writeReport(t, `{"b": {"loc": 3, "bug_type": "SOMETHING_NEW"}}`)

	bugs, err := LoadSmartFuzz(path)
	require.NoError(t, err)
	require.Len(t, bugs, 1)
	assert.Equal(t, model.Category("SOMETHING_NEW"), bugs[0].Category)
}

func TestLoadSmartFuzzNotFound(t *testing.T) {
	_, err := LoadSmartFuzz(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLoadSmartFuzzMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":           "][",
		"missing line field": `{"b": {"bug_type": "REENTRANCY"}}`,
		"missing bug type":   `{"b": {"loc": 3}}`,
		"unparseable line":   `{"b": {"loc": "abc", "bug_type": "REENTRANCY"}}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSmartFuzz(writeReport(t, content))
			assert.ErrorIs(t, err, model.ErrMalformedRecord)
		})
	}
}

func TestMapCategory(t *testing.T) {
	assert.Equal(t, model.CategoryOverflowUnderflow, MapCategory("ARITHMETIC_UNDERFLOW"))
	assert.Equal(t, model.CategoryOverflowUnderflow, MapCategory("DANGEROUS_AND:EVM_INTEGER_OVERFLOW_SUBTYPE"))
	assert.Equal(t, model.CategoryTimestampDependency, MapCategory("TIME_STAMP_DEPENDENCY"))
	assert.Equal(t, model.Category("UNKNOWN"), MapCategory("UNKNOWN"))
}

func TestLoadDispatch(t *testing.T) {
	path := writeReport(t, `{"b": {"loc": 3, "bug_type": "REENTRANCY"}}`)

	bugs, err := Load("smartfuzz", path)
	require.NoError(t, err)
	assert.Len(t, bugs, 1)

	_, err = Load("mythril", path)
	assert.Error(t, err)
}
