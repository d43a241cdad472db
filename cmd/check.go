package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/workflow"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the configured linters",
	Long: `Run each configured linter as a python module inside the environment.

The default linters are "flake8 ." and "black --check .". Set linters in
xvenv.toml to change them.`,
	Args: noRest,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(settings.Linters) == 0 {
		logWarning("no linters configured")
		return nil
	}

	if err := runChain(cmd, (*workflow.Env).Check); err != nil {
		return err
	}

	logSuccess("all checks passed")
	return nil
}
