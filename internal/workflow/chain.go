package workflow

import (
	"context"

	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/logging"
	"github.com/kr-g/xvenv/internal/sandbox"
	"github.com/kr-g/xvenv/internal/system"
)

// Chain is an ordered list of steps that stops at the first failure.
type Chain struct {
	Name  string
	Steps []Step
}

// StepNames returns the names of the chain's steps in order.
func (c Chain) StepNames() []string {
	names := make([]string, len(c.Steps))
	for i, s := range c.Steps {
		names[i] = s.Name
	}
	return names
}

// Run executes the steps in order. The first failure is returned as
// errors.StepFailed and no later step runs.
func (c Chain) Run(ctx context.Context, e *Env) error {
	logging.Debug("running chain", "chain", c.Name, "steps", c.StepNames())

	for i, step := range c.Steps {
		logging.UserStep(i+1, len(c.Steps), step.Name)
		if err := e.runStep(ctx, step); err != nil {
			return errors.StepFailed(step.Name, err)
		}
	}
	return nil
}

// RunSingle executes one step outside a chain. Its error is returned as is,
// so a start failure keeps its own exit code.
func RunSingle(ctx context.Context, e *Env, step Step) error {
	return e.runStep(ctx, step)
}

func (e *Env) runStep(ctx context.Context, step Step) error {
	log := logging.ForStep(e.Project, step.Name)
	log.Debug("step started")

	res, err := step.Run(ctx)
	if err == nil && res != nil && !res.Success() {
		err = errors.ExitStatus("command", res.ExitCode)
	}

	e.record(step.Name, res, err)

	if err != nil {
		log.Debug("step failed", "error", err)
		logging.UserError("%s failed", step.Name)
		if res != nil && !e.Settings.Verbose {
			logging.UserOutput(res.Output)
		}
		return err
	}
	log.Debug("step finished")
	return nil
}

func (e *Env) record(step string, res *system.Result, stepErr error) {
	if e.Audit == nil {
		return
	}

	code := 0
	details := ""
	switch {
	case res != nil:
		code = res.ExitCode
	case stepErr != nil:
		code = errors.GetExitCode(stepErr)
	}
	if stepErr != nil {
		details = stepErr.Error()
	}

	if err := e.Audit.LogStep(e.Project, step, code, details); err != nil {
		logging.Warn("failed to write audit event", "step", step, "error", err)
	}
}

// MakeOptions configures the make chain.
type MakeOptions struct {
	// Quick stops after the tools step.
	Quick bool

	// Check runs the linters before build.
	Check bool

	Create sandbox.CreateOptions
	Tools  []string
	Update bool
}

// Make returns the full setup chain:
// setup, pip, tools, test, [check], build, install.
func (e *Env) Make(opts MakeOptions) Chain {
	steps := []Step{
		e.Setup(opts.Create),
		e.Pip(),
		e.Tools(opts.Tools, opts.Update),
	}
	if !opts.Quick {
		steps = append(steps, e.Diagnose())
		if opts.Check {
			steps = append(steps, e.Check().Steps...)
		}
		steps = append(steps, e.Build(), e.Install())
	}
	return Chain{Name: "make", Steps: steps}
}

// BuildInstall returns the build then install chain.
func (e *Env) BuildInstall() Chain {
	return Chain{Name: "binst", Steps: []Step{e.Build(), e.Install()}}
}

// Check returns one step per configured linter.
func (e *Env) Check() Chain {
	steps := make([]Step, 0, len(e.Settings.Linters))
	for _, linter := range e.Settings.Linters {
		steps = append(steps, e.Lint(linter))
	}
	return Chain{Name: "check", Steps: steps}
}
