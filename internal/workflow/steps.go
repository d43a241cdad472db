package workflow

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/logging"
	"github.com/kr-g/xvenv/internal/sandbox"
	"github.com/kr-g/xvenv/internal/system"
)

// Step names as shown in banners, errors and the audit log.
const (
	StepSetup   = "setup"
	StepPip     = "pip"
	StepTools   = "tools"
	StepClean   = "clean"
	StepTest    = "test"
	StepCheck   = "check"
	StepBuild   = "build"
	StepInstall = "install"
	StepRun     = "run"
)

// DiagnosticCode prints the pip location and the environment of the
// sandboxed interpreter.
const DiagnosticCode = "import os; import pip; print(pip.__file__);[ print(k,chr(61),v) for k,v in os.environ.items() ]"

// Step is one named unit of work.
// A nil result with a nil error means the step did its work in-process.
type Step struct {
	Name string
	Run  func(ctx context.Context) (*system.Result, error)
}

// Setup creates the sandbox. It runs the interpreter directly because
// there is nothing to activate yet.
func (e *Env) Setup(opts sandbox.CreateOptions) Step {
	return Step{
		Name: StepSetup,
		Run: func(ctx context.Context) (*system.Result, error) {
			inv := sandbox.CreateInvocation(sandbox.NewDescriptor(e.Settings), e.Settings.Python, opts)
			inv.Env = e.Vars
			return e.Runner.Run(ctx, inv)
		},
	}
}

// Pip bootstraps the package manager inside the sandbox.
func (e *Env) Pip() Step {
	return Step{
		Name: StepPip,
		Run: func(ctx context.Context) (*system.Result, error) {
			return e.sandboxed(ctx, e.Settings.Python, "-m", "ensurepip", "-U")
		},
	}
}

// ToolsArgs returns the install command line for tools.
func ToolsArgs(python string, tools []string, update bool) []string {
	args := append([]string{python, "-m", "pip", "install"}, tools...)
	if update {
		args = append(args, "-U")
	}
	return args
}

// Tools installs tools into the sandbox, upgrading them when update is set.
func (e *Env) Tools(tools []string, update bool) Step {
	return Step{
		Name: StepTools,
		Run: func(ctx context.Context) (*system.Result, error) {
			if len(tools) == 0 {
				return nil, errors.ValidationError("no tools to install")
			}
			return e.sandboxed(ctx, ToolsArgs(e.Settings.Python, tools, update)...)
		},
	}
}

// Build creates source and wheel distributions.
func (e *Env) Build() Step {
	return Step{
		Name: StepBuild,
		Run: func(ctx context.Context) (*system.Result, error) {
			return e.sandboxed(ctx, e.Settings.Python, "-m", "setup", "sdist", "build", "bdist_wheel")
		},
	}
}

// Install installs the project in editable mode.
func (e *Env) Install() Step {
	return Step{
		Name: StepInstall,
		Run: func(ctx context.Context) (*system.Result, error) {
			return e.sandboxed(ctx, e.Settings.Python, "-m", "pip", "install", "-e", ".")
		},
	}
}

// Diagnose dumps pip location and environment from inside the sandbox.
func (e *Env) Diagnose() Step {
	return Step{
		Name: StepTest,
		Run: func(ctx context.Context) (*system.Result, error) {
			return e.sandboxed(ctx, e.Settings.Python, "-c", DiagnosticCode)
		},
	}
}

// Lint runs one configured linter as a python module.
func (e *Env) Lint(linter string) Step {
	return Step{
		Name: StepCheck + " " + linter,
		Run: func(ctx context.Context) (*system.Result, error) {
			words, err := shellquote.Split(linter)
			if err != nil {
				return nil, errors.Wrap(errors.ExitConfigError, "invalid linter "+linter, err)
			}
			if len(words) == 0 {
				return nil, errors.ValidationError("empty linter command")
			}
			args := append([]string{e.Settings.Python, "-m"}, words...)
			return e.sandboxed(ctx, args...)
		},
	}
}

// Command runs arbitrary tokens inside the sandbox. Every token stays one
// argument.
func (e *Env) Command(tokens []string) Step {
	return Step{
		Name: StepRun,
		Run: func(ctx context.Context) (*system.Result, error) {
			if len(tokens) == 0 {
				return nil, errors.ValidationError("no command given")
			}
			return e.sandboxed(ctx, tokens...)
		},
	}
}

// Clean removes build artifacts matching the configured patterns.
func (e *Env) Clean() Step {
	return Step{
		Name: StepClean,
		Run: func(ctx context.Context) (*system.Result, error) {
			for _, pattern := range e.Settings.CleanPatterns {
				if err := e.cleanPattern(pattern); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	}
}

// cleanPattern removes the matches of one pattern. Symlinks are unlinked,
// matches reached through a symlinked parent are skipped.
func (e *Env) cleanPattern(pattern string) error {
	if !filepath.IsLocal(pattern) {
		return errors.ConfigError("invalid clean pattern "+pattern, fmt.Errorf("pattern leaves the working directory"))
	}

	root, err := filepath.Abs(e.Settings.WorkDir)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to resolve working directory", err)
	}

	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return errors.ConfigError("invalid clean pattern "+pattern, err)
	}

	for _, match := range matches {
		rel, err := filepath.Rel(root, match)
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError, "invalid clean match "+match, err)
		}
		path, err := e.Settings.ProjectPath(rel)
		if err != nil {
			logging.UserWarning("skipping %s: %v", rel, err)
			continue
		}

		failures := sandbox.RemoveTree(path)
		for _, f := range failures {
			logging.UserWarning("could not remove %s: %v", f.Path, f.Err)
		}
		if len(failures) > 0 {
			return errors.RemoveFailed(path, len(failures))
		}
		logging.UserInfo("removed %s", rel)
	}
	return nil
}
