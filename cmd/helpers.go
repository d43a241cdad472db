package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/app"
	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/logging"
	"github.com/kr-g/xvenv/internal/workflow"
)

// noRest rejects leftover positional arguments of closed subcommands.
func noRest(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.UnknownOptions(args)
	}
	return nil
}

// newEnv returns the workflow environment for the current settings.
// Program output is shown when verbose is set or echo is true.
func newEnv(cmd *cobra.Command, echo bool) (*workflow.Env, error) {
	var sink io.Writer = io.Discard
	if settings.Verbose || echo {
		sink = cmd.OutOrStdout()
	}
	return workflow.NewEnv(settings, app.Default.RunnerFor(sink), auditLogger())
}

// auditLogger returns the run history logger of this invocation.
func auditLogger() *audit.Logger {
	if runLog == nil {
		runLog = app.Default.AuditFor(settings.StateDir)
	}
	return runLog
}

// recordEvent appends a non-step event to the run history.
func recordEvent(eventType audit.EventType, details string) {
	err := auditLogger().LogEvent(eventType, audit.ProjectKey(settings.WorkDir), details)
	if err != nil {
		logging.Warn("failed to write audit event", "type", eventType, "error", err)
	}
}

// runSingle runs one step with a fresh environment.
func runSingle(cmd *cobra.Command, echo bool, step func(e *workflow.Env) workflow.Step) error {
	env, err := newEnv(cmd, echo)
	if err != nil {
		return err
	}
	return workflow.RunSingle(cmd.Context(), env, step(env))
}

// runChain runs a chain with a fresh environment.
func runChain(cmd *cobra.Command, chain func(e *workflow.Env) workflow.Chain) error {
	env, err := newEnv(cmd, false)
	if err != nil {
		return err
	}
	return chain(env).Run(cmd.Context(), env)
}
