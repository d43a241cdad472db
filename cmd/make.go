package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/sandbox"
	"github.com/kr-g/xvenv/internal/workflow"
)

var makeCmd = &cobra.Command{
	Use:   "make [tool...]",
	Short: "Run setup, pip, tools, test, build and install",
	Long: `Run the full setup chain and stop at the first failing step:

  setup, pip, tools, test, [check], build, install

With --quick the chain ends after tools. Positional arguments replace the
configured tool set.`,
	Args: cobra.ArbitraryArgs,
	RunE: runMake,
}

var (
	makeQuick  bool
	makeCheck  bool
	makeClear  bool
	makeCopy   bool
	makeUpdate bool
)

func init() {
	makeCmd.Flags().BoolVarP(&makeQuick, "quick", "q", false, "Stop after installing tools")
	makeCmd.Flags().BoolVar(&makeCheck, "check", false, "Run the quality checks before build")
	makeCmd.Flags().BoolVarP(&makeClear, "clear", "c", false, "Delete the environment contents before creating it")
	makeCmd.Flags().BoolVar(&makeCopy, "copy", false, "Copy the interpreter instead of symlinking it")
	makeCmd.Flags().BoolVarP(&makeUpdate, "update-deps", "u", false, "Upgrade tools that are already installed")
	rootCmd.AddCommand(makeCmd)
}

func runMake(cmd *cobra.Command, args []string) error {
	opts := workflow.MakeOptions{
		Quick:  makeQuick,
		Check:  makeCheck,
		Create: sandbox.CreateOptions{Clear: makeClear, Copy: makeCopy},
		Tools:  settings.Tools.Override(args).Names(),
		Update: makeUpdate,
	}

	logInfo("making...")
	err := runChain(cmd, func(e *workflow.Env) workflow.Chain {
		return e.Make(opts)
	})
	if err != nil {
		return err
	}

	logSuccess("done")
	return nil
}
