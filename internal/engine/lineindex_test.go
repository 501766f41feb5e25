package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

func TestLineIndexLookup(t *testing.T) {
	bugs := []model.InjectedBug{
		{Category: model.CategoryOverflowUnderflow, StartLine: 10, Length: 2},
		{Category: model.CategoryOverflowUnderflow, StartLine: 20, Length: 0},
	}
	ix := NewLineIndex(bugs)

	for _, line := range []int{10, 11, 12} {
		got, ok := ix.Lookup(line)
		require.True(t, ok, "line %d", line)
		assert.Equal(t, bugs[0], got)
	}

	got, ok := ix.Lookup(20)
	require.True(t, ok)
	assert.Equal(t, bugs[1], got)

	for _, line := range []int{1, 9, 13, 19, 21, 1000} {
		_, ok := ix.Lookup(line)
		assert.False(t, ok, "line %d", line)
	}
}

func TestLineIndexOverlapEarliestStartWins(t *testing.T) {
	bugs := []model.InjectedBug{
		{Category: model.CategoryReentrancy, StartLine: 5, Length: 10},
		{Category: model.CategoryOverflowUnderflow, StartLine: 8, Length: 10},
	}
	ix := NewLineIndex(bugs)

	got, ok := ix.Lookup(9)
	require.True(t, ok)
	assert.Equal(t, bugs[0], got)

	// past the first span, the second takes over
	got, ok = ix.Lookup(16)
	require.True(t, ok)
	assert.Equal(t, bugs[1], got)
}

func TestLineIndexMemoizes(t *testing.T) {
	bugs := []model.InjectedBug{
		{Category: model.CategoryTimestampDependency, StartLine: 3, Length: 1},
	}
	ix := NewLineIndex(bugs)

	first, ok := ix.Lookup(4)
	require.True(t, ok)
	assert.Contains(t, ix.memo, 4)

	second, ok := ix.Lookup(4)
	require.True(t, ok)
	assert.Equal(t, first, second)

	_, ok = ix.Lookup(99)
	assert.False(t, ok)
	assert.Equal(t, -1, ix.memo[99])
}
