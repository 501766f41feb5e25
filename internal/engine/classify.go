package engine

import (
	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// Classify scores one tool report against one ground-truth set.
//
// Per reported bug: a line covered by an injected bug with the same category
// is a true positive; covered with a different category, a misclassification
// (the true category is recorded alongside the report); uncovered and of the
// log's declared category, a false positive; uncovered and of any other
// category, out of scope for this log and dropped.
//
// An injected bug counts as "seen" whenever any report lands in its span,
// right category or not. False negatives are the never-seen injected bugs;
// duplicates among seen bugs collapse for the FN/TPRange counts only, so
// Injected == TPRange + FN always, while TP and FP count every report.
func Classify(declared model.Category, injected []model.InjectedBug, reported []model.ReportedBug) model.Report {
	ix := NewLineIndex(injected)
	rep := model.Report{Stats: model.Stats{Injected: len(injected)}}

	seen := make(map[model.InjectedBug]bool)
	for _, r := range reported {
		hit, ok := ix.Lookup(r.Line)
		switch {
		case !ok:
			if r.Category == declared {
				rep.FP = append(rep.FP, r)
			}
		case hit.Category != r.Category:
			seen[hit] = true
			rep.Miscls = append(rep.Miscls, model.Misclass{TrueCategory: hit.Category, Bug: r})
		default:
			seen[hit] = true
			rep.TP = append(rep.TP, r)
		}
	}

	for _, b := range injected {
		if !seen[b] {
			rep.FN = append(rep.FN, b)
		}
	}

	rep.Stats.FP = len(rep.FP)
	rep.Stats.TP = len(rep.TP)
	rep.Stats.Miscls = len(rep.Miscls)
	// Counted over distinct bugs, so duplicate ground-truth rows covered by
	// one report collapse here even though the FN list holds every row.
	rep.Stats.FN = len(injected) - len(seen)
	rep.Stats.TPRange = len(seen)
	return rep
}
