package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
	"github.com/sbip-sg/SolidiFI-benchmark/internal/tools"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "categories", Short: "List recognized bug categories"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List benchmark categories and the tool labels mapped to each",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range model.Recognized() {
				labels := tools.RawLabels(c)
				sort.Strings(labels)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c, strings.Join(labels, ", "))
			}
			return nil
		},
	})
	return cmd
}
