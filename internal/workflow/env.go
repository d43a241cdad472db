package workflow

import (
	"context"

	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/config"
	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/script"
	"github.com/kr-g/xvenv/internal/system"
)

// Env bundles what steps need to run.
type Env struct {
	Settings *config.Settings
	Runner   system.Runner
	Executor *script.Executor

	// Audit receives one event per step. May be nil.
	Audit *audit.Logger

	// Project is the audit key of the working directory.
	Project string

	// Vars are the extra KEY=VALUE pairs exported to every program.
	Vars []string
}

// NewEnv creates an Env from settings. The env file, if any, is read here.
func NewEnv(s *config.Settings, runner system.Runner, auditLog *audit.Logger) (*Env, error) {
	vars, err := s.Environ()
	if err != nil {
		return nil, errors.ConfigError("failed to load env file", err)
	}

	return &Env{
		Settings: s,
		Runner:   runner,
		Executor: script.NewExecutor(runner, s, vars),
		Audit:    auditLog,
		Project:  audit.ProjectKey(s.WorkDir),
		Vars:     vars,
	}, nil
}

// sandboxed runs args inside the activated sandbox.
func (e *Env) sandboxed(ctx context.Context, args ...string) (*system.Result, error) {
	return e.Executor.Run(ctx, e.Settings.WorkDir, script.JoinArgs(args...))
}
