package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/workflow"
)

var pipCmd = &cobra.Command{
	Use:   "pip",
	Short: "Install or upgrade pip inside the environment",
	Args:  noRest,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, false, (*workflow.Env).Pip)
	},
}

func init() {
	rootCmd.AddCommand(pipCmd)
}
