package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/workflow"
)

var toolsCmd = &cobra.Command{
	Use:   "tools [tool...]",
	Short: "Install tools into the environment",
	Long: `Install tools into the environment with pip.

Without arguments the configured tool set is installed
(default: setuptools twine wheel black flake8).`,
	Args: cobra.ArbitraryArgs,
	RunE: runTools,
}

var toolsUpdate bool

func init() {
	toolsCmd.Flags().BoolVarP(&toolsUpdate, "update-deps", "u", false, "Upgrade tools that are already installed")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	tools := settings.Tools.Override(args).Names()

	return runSingle(cmd, false, func(e *workflow.Env) workflow.Step {
		return e.Tools(tools, toolsUpdate)
	})
}
