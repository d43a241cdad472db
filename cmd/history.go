package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/audit"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the run history of the working directory",
	Args:  noRest,
	RunE:  runHistory,
}

var historyClear bool

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the history instead of showing it")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	project := audit.ProjectKey(settings.WorkDir)
	logger := auditLogger()

	if historyClear {
		if err := logger.Remove(project); err != nil {
			return fmt.Errorf("failed to remove history: %w", err)
		}
		logSuccess("history cleared")
		return nil
	}

	events, err := logger.Events(project)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(events) == 0 {
		logInfo("No history for %s", settings.WorkDir)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		if jsonOutput {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		label := string(e.Type)
		if e.Step != "" {
			label = e.Step
		}
		run := e.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		if e.Details != "" {
			fmt.Fprintf(out, "[%s] %s %-8s exit=%d (%s)\n", ts, run, label, e.ExitCode, e.Details)
		} else {
			fmt.Fprintf(out, "[%s] %s %-8s exit=%d\n", ts, run, label, e.ExitCode)
		}
	}

	return nil
}
