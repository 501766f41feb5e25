package engine

import (
	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// LineIndex answers "which injected bug covers this line" for one ground-truth
// set. Lookups are pure in (set, line), so results are memoized per instance;
// the memo lives and dies with the index, never across sets.
type LineIndex struct {
	bugs []model.InjectedBug
	memo map[int]int // line -> position in bugs, -1 for no match
}

// NewLineIndex builds an index over bugs. The slice must already be sorted
// ascending by start line, as the loaders guarantee.
func NewLineIndex(bugs []model.InjectedBug) *LineIndex {
	return &LineIndex{bugs: bugs, memo: make(map[int]int)}
}

// Lookup returns the first bug, in ascending start-line order, whose
// inclusive span contains line. When spans overlap the earliest start line
// wins; that tie-break is deliberate, not incidental.
func (ix *LineIndex) Lookup(line int) (model.InjectedBug, bool) {
	if pos, ok := ix.memo[line]; ok {
		if pos < 0 {
			return model.InjectedBug{}, false
		}
		return ix.bugs[pos], true
	}
	for i, b := range ix.bugs {
		if b.Contains(line) {
			ix.memo[line] = i
			return b, true
		}
	}
	ix.memo[line] = -1
	return model.InjectedBug{}, false
}
