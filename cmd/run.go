package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/workflow"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a command inside the environment",
	Long: `Run a command inside the activated environment.

Everything after the command name is passed through unchanged, flags included:
  xvenv run python -c 'print(1)'
  xvenv run pytest -k "not slow"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	tokens := append([]string(nil), args...)
	recordEvent(audit.EventRun, args[0])

	return runSingle(cmd, true, func(e *workflow.Env) workflow.Step {
		return e.Command(tokens)
	})
}
