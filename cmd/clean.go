package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/workflow"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	Args:  noRest,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, false, (*workflow.Env).Clean)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
