package app

import (
	"github.com/spf13/cobra"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "inspector", Short: "Score analysis-tool reports against SolidiFI injected bugs"}
	cli.AddCommands(root)
	return root
}
