package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/workflow"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Print pip location and environment from inside the environment",
	Args:  noRest,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, true, (*workflow.Env).Diagnose)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
