package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/util"
)

const rule = 80

// Pretty writes the human-readable view of one report: the contract path, a
// counts line, then the false negatives as line ranges and the false
// positives with the offending source line pulled from the contract.
func Pretty(w io.Writer, rep model.Report) {
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, rep.ContractPath)
	s := rep.Stats
	fmt.Fprintf(w, "Injected: %-3d  FP: %-3d  TP: %-3d TP_RANGE: %d  FN: %-3d Misclassified: %-3d\n",
		s.Injected, s.FP, s.TP, s.TPRange, s.FN, s.Miscls)
	if len(rep.FN) > 0 {
		fmt.Fprintln(w, "False negatives:")
		for _, b := range rep.FN {
			fmt.Fprintf(w, "Line %2d-%2d\n", b.StartLine, b.EndLine())
		}
	}
	if len(rep.FP) > 0 {
		fmt.Fprintln(w, "False positives:")
		for _, b := range rep.FP {
			fmt.Fprintf(w, "Line %2d: %s\n", b.Line, util.ReadLine(rep.ContractPath, b.Line))
		}
	}
}

// Raw writes the full report as indented JSON.
func Raw(w io.Writer, rep model.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// MissingReport marks a bug log the tool produced no report for. Non-fatal;
// the batch moves on to the next pair.
func MissingReport(w io.Writer, contractPath string) {
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintf(w, "missing report for %s\n", contractPath)
}
