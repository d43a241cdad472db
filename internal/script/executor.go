package script

import (
	"context"
	"fmt"
	"os"

	"github.com/kr-g/xvenv/internal/config"
	"github.com/kr-g/xvenv/internal/logging"
	"github.com/kr-g/xvenv/internal/system"
)

// Executor runs composed scripts from temporary files.
type Executor struct {
	Runner system.Runner

	// Shell interprets the script file. Defaults to bash.
	Shell string

	// TempDir holds the script files. Empty means os.TempDir.
	TempDir string

	// KeepTemp leaves the script on disk and logs its path.
	KeepTemp bool

	// Env is appended to the environment of the shell.
	Env []string
}

// NewExecutor creates an Executor configured from settings.
func NewExecutor(runner system.Runner, s *config.Settings, env []string) *Executor {
	return &Executor{
		Runner:   runner,
		Shell:    s.Shell,
		KeepTemp: s.KeepTemp,
		Env:      env,
	}
}

// Execute writes text to a temporary script, runs it and returns the
// runner's result unchanged.
func (e *Executor) Execute(ctx context.Context, text string) (*system.Result, error) {
	f, err := os.CreateTemp(e.TempDir, "xvenv-*.sh")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary script: %w", err)
	}
	path := f.Name()
	logging.Debug("tempfile", "path", path)

	defer func() {
		if e.KeepTemp {
			logging.Info("keeping temporary script", "path", path)
			return
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logging.Warn("failed to remove temporary script", "path", path, "error", err)
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write temporary script: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary script: %w", err)
	}

	shell := e.Shell
	if shell == "" {
		shell = config.DefaultShell
	}

	return e.Runner.Run(ctx, system.Invocation{
		Args: []string{shell, path},
		Env:  e.Env,
	})
}

// Run composes payload for workDir and executes it.
func (e *Executor) Run(ctx context.Context, workDir, payload string) (*system.Result, error) {
	return e.Execute(ctx, Compose(workDir, payload))
}
