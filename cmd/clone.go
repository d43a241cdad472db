package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/app"
	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/system"
)

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Copy the xvenv binary into the working directory",
	Args:  noRest,
	RunE:  runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	src, err := app.Default.Locator.Executable()
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "cannot locate the xvenv binary", err)
	}

	dest := filepath.Join(settings.WorkDir, filepath.Base(src))
	if sameFile(src, dest) {
		return errors.New(errors.ExitGeneralError, "same base folder")
	}

	if err := system.CopyFile(src, dest); err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to copy "+src, err)
	}

	recordEvent(audit.EventClone, dest)
	logSuccess("copied %s to %s", src, dest)
	return nil
}

func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
