package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/app"
	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/sandbox"
	"github.com/kr-g/xvenv/internal/tui"
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the virtual environment",
	Long: `Delete the .venv folder below the working directory.

Asks for confirmation first unless --yes is given. Removal continues past
entries that cannot be deleted and reports each of them.`,
	Args: noRest,
	RunE: runDrop,
}

var dropYes bool

func init() {
	dropCmd.Flags().BoolVarP(&dropYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(dropCmd)
}

func runDrop(cmd *cobra.Command, args []string) error {
	var confirmer tui.Confirmer = tui.AssumeYes{}
	if !dropYes {
		confirmer = app.Default.ConfirmerFor(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	res, err := sandbox.Destroy(sandbox.NewDescriptor(settings), confirmer)
	if res != nil {
		for _, f := range res.Failures {
			logError("%s: %v", f.Path, f.Err)
		}
	}
	if err != nil {
		return err
	}

	if res.Declined {
		logInfo("aborted")
		return nil
	}

	recordEvent(audit.EventDestroy, res.Root)
	logSuccess("removed %s", res.Root)
	return nil
}
