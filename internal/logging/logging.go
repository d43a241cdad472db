package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options selects where diagnostics go and how they look.
type Options struct {
	// Debug lowers the level so Debug traces are written.
	Debug bool

	// JSON writes one JSON object per record instead of key=value text.
	JSON bool

	// Writer defaults to stderr.
	Writer io.Writer
}

var (
	// Logger is the diagnostic logger. Setup replaces it.
	Logger *slog.Logger

	level = new(slog.LevelVar)
)

func init() {
	Setup(Options{})
}

// Setup installs a logger for opts. Text records leave out the timestamp,
// JSON records keep it for tools that collect them.
func Setup(opts Options) {
	if opts.Debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	if opts.JSON {
		Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
		return
	}
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// ForStep returns a logger tagged with a project and a workflow step.
func ForStep(project, step string) *slog.Logger {
	return Logger.With("project", project, "step", step)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
