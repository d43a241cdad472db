package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/workflow"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build source and wheel distributions",
	Args:  noRest,
	RunE: func(cmd *cobra.Command, args []string) error {
		logInfo("building...")
		return runSingle(cmd, false, (*workflow.Env).Build)
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the project in editable mode",
	Args:  noRest,
	RunE: func(cmd *cobra.Command, args []string) error {
		logInfo("installing...")
		return runSingle(cmd, false, (*workflow.Env).Install)
	},
}

var binstCmd = &cobra.Command{
	Use:   "binst",
	Short: "Build, then install in editable mode",
	Args:  noRest,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChain(cmd, (*workflow.Env).BuildInstall)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(binstCmd)
}
