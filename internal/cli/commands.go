package cli

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/config"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/corpus"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/engine"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/report"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/tools"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newScoreCmd())
	root.AddCommand(newCategoriesCmd())
	root.AddCommand(newInitCmd())
}

func newScoreCmd() *cobra.Command {
	var (
		contractsDir string
		reportsDir   string
		tool         string
		category     string
		index        int
		printRaw     bool
		printSummary bool
		useTUI       bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a tool's reports against the injected-bug ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(category)
			if err != nil {
				names := make([]string, 0, 3)
				for _, c := range model.Recognized() {
					names = append(names, string(c))
				}
				return fmt.Errorf("%w %q; supported: %s", model.ErrUnsupportedCategory, category, strings.Join(names, ", "))
			}

			cfg, _, _ := config.Load(".")
			if contractsDir == "" {
				contractsDir = cfg.ContractsDir
			}
			if reportsDir == "" {
				reportsDir = cfg.ReportsDir
			}
			if tool == "" {
				tool = cfg.Tool
			}

			logs, err := corpus.FindBugLogs(contractsDir, cat)
			if err != nil {
				return err
			}
			reportFiles, err := corpus.FindReports(reportsDir, cat)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var summary report.Summary
			var reps []model.Report
			for _, logPath := range logs {
				idx, err := corpus.IndexFromFile(logPath)
				if err != nil {
					glog.Warningf("skipping %s: %v", logPath, err)
					continue
				}
				if index != 0 && index != idx {
					continue
				}
				contract := corpus.ContractPath(logPath)
				reportPath := corpus.ReportByIndex(reportFiles, idx)
				if reportPath == "" {
					report.MissingReport(out, contract)
					continue
				}
				// a bad pair skips that pair only, the batch keeps going
				injected, err := corpus.LoadBugLog(logPath)
				if err != nil {
					glog.Warningf("skipping %s: %v", logPath, err)
					continue
				}
				reported, err := tools.Load(tool, reportPath)
				if err != nil {
					glog.Warningf("skipping %s: %v", reportPath, err)
					continue
				}

				rep := engine.Classify(model.Category(corpus.CategoryFromLog(logPath)), injected, reported)
				rep.LogPath = logPath
				rep.ContractPath = contract
				summary.Add(rep.Stats)
				reps = append(reps, rep)

				switch {
				case useTUI:
					// rendered after the batch
				case printRaw:
					if err := report.Raw(out, rep); err != nil {
						return err
					}
				default:
					report.Pretty(out, rep)
				}
			}

			if useTUI {
				return tui.Run(reps)
			}
			if printSummary {
				report.PrintSummary(out, summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&contractsDir, "contracts", "", "Folder of injected buggy contracts and bug logs")
	cmd.Flags().StringVar(&reportsDir, "reports", "", "Folder of reports generated by the analysis tool")
	cmd.Flags().StringVar(&tool, "tool", "", "Tool whose report format to parse")
	cmd.Flags().StringVarP(&category, "bug-type", "t", "", "Bug type to score (required)")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Score only the contract with this index")
	cmd.Flags().BoolVar(&printRaw, "print-raw", false, "Print raw report data instead of the formatted view")
	cmd.Flags().BoolVar(&printSummary, "print-summary", false, "Print run-wide totals after the batch")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Browse results in an interactive view")
	_ = cmd.MarkFlagRequired("bug-type")
	return cmd
}
