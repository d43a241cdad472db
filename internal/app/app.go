// Package app provides the application context for xvenv.
// It allows dependency injection for testing.
package app

import (
	"io"

	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/logging"
	"github.com/kr-g/xvenv/internal/system"
	"github.com/kr-g/xvenv/internal/tui"
)

// App holds the application dependencies
type App struct {
	// Runner executes external programs. Nil means a real OS runner.
	Runner system.Runner

	// Locator finds the running binary for clone.
	Locator system.SelfLocator

	// Confirmer answers destroy prompts. Nil means ask on the terminal.
	Confirmer tui.Confirmer

	// Audit records run history. Nil means a logger under the state dir.
	Audit *audit.Logger
}

// Option is a function that configures the App
type Option func(*App)

// WithRunner sets a custom runner
func WithRunner(r system.Runner) Option {
	return func(a *App) {
		a.Runner = r
	}
}

// WithLocator sets a custom self locator
func WithLocator(l system.SelfLocator) Option {
	return func(a *App) {
		a.Locator = l
	}
}

// WithConfirmer sets a custom confirmer
func WithConfirmer(c tui.Confirmer) Option {
	return func(a *App) {
		a.Confirmer = c
	}
}

// WithAudit sets a custom audit logger
func WithAudit(l *audit.Logger) Option {
	return func(a *App) {
		a.Audit = l
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Locator: system.DefaultLocator(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// RunnerFor returns the configured runner, or an OS runner that mirrors
// output to sink.
func (a *App) RunnerFor(sink io.Writer) system.Runner {
	if a.Runner != nil {
		return a.Runner
	}
	return system.NewRunner(sink)
}

// ConfirmerFor returns the configured confirmer, or a terminal prompt on in
// and out.
func (a *App) ConfirmerFor(in io.Reader, out io.Writer) tui.Confirmer {
	if a.Confirmer != nil {
		return a.Confirmer
	}
	return tui.NewConfirmer(in, out)
}

// AuditFor returns the configured audit logger, or one rooted at stateDir.
func (a *App) AuditFor(stateDir string) *audit.Logger {
	if a.Audit != nil {
		return a.Audit
	}
	l := audit.NewLogger(stateDir)
	logging.Debug("audit logger ready", "state_dir", stateDir, "run_id", l.RunID())
	return l
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
