package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// Summary accumulates per-file stats into run-wide totals. It is a plain
// value the caller folds reports into; there is no shared accumulator.
type Summary struct {
	Total    int `json:"total"`
	Injected int `json:"injected"`
	TP       int `json:"tp"`
	TPRange  int `json:"tpRange"`
	FP       int `json:"fp"`
	FN       int `json:"fn"`
	Miscls   int `json:"misclassified"`
}

// Add folds one file's stats in. Total counts classified findings: TP + FP + FN.
func (s *Summary) Add(st model.Stats) {
	s.Total += st.TP + st.FP + st.FN
	s.Injected += st.Injected
	s.TP += st.TP
	s.TPRange += st.TPRange
	s.FP += st.FP
	s.FN += st.FN
	s.Miscls += st.Miscls
}

func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, strings.Repeat("*", rule))
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Total: %d  Injected: %d  TP: %d  TP_Range: %d  FP: %d  FN: %d  Misclassified: %d\n",
		s.Total, s.Injected, s.TP, s.TPRange, s.FP, s.FN, s.Miscls)
}
