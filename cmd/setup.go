package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/sandbox"
	"github.com/kr-g/xvenv/internal/workflow"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the virtual environment",
	Args:  noRest,
	RunE:  runSetup,
}

var (
	setupClear bool
	setupCopy  bool
)

func init() {
	setupCmd.Flags().BoolVarP(&setupClear, "clear", "c", false, "Delete the environment contents before creating it")
	setupCmd.Flags().BoolVar(&setupCopy, "copy", false, "Copy the interpreter instead of symlinking it")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	opts := sandbox.CreateOptions{Clear: setupClear, Copy: setupCopy}

	err := runSingle(cmd, false, func(e *workflow.Env) workflow.Step {
		return e.Setup(opts)
	})
	if err != nil {
		return err
	}

	logSuccess("virtual environment ready in %s", settings.WorkDir)
	return nil
}
