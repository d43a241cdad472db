package system

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	xerrors "github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/logging"
)

// tailLines is how many trailing output lines a Result keeps.
const tailLines = 40

// OSRunner implements Runner using real OS processes.
type OSRunner struct {
	// Sink receives each output line as soon as it is read. Nil discards output.
	Sink io.Writer
}

// NewRunner creates an OSRunner streaming output to sink.
func NewRunner(sink io.Writer) *OSRunner {
	return &OSRunner{Sink: sink}
}

func (r *OSRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	if len(inv.Args) == 0 {
		return nil, xerrors.ValidationError("empty invocation")
	}

	logging.Debug("run", "args", inv.Args, "dir", inv.Dir)

	cmd := exec.CommandContext(ctx, inv.Args[0], inv.Args[1:]...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, xerrors.StartFailed(inv.Program(), err)
	}
	// One pipe for both streams keeps the original interleaving.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, xerrors.StartFailed(inv.Program(), err)
	}

	tail := newTail(tailLines)
	sink := r.Sink
	if sink == nil {
		sink = io.Discard
	}

	reader := bufio.NewReader(stdout)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			fmt.Fprintln(sink, line)
			tail.add(line)
		}
		if err != nil {
			if err != io.EOF {
				logging.Debug("output read", "error", err)
				// Keep draining so the child never blocks on a full pipe.
				_, _ = io.Copy(sink, reader)
			}
			break
		}
	}

	result := &Result{Output: tail.String()}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, xerrors.StartFailed(inv.Program(), err)
		}
		// -1 when the process was killed by a signal.
		result.ExitCode = exitErr.ExitCode()
	}

	logging.Debug("result", "program", inv.Program(), "exit", result.ExitCode)
	return result, nil
}

// tail keeps the last n lines written to it.
type tail struct {
	lines []string
	max   int
}

func newTail(max int) *tail {
	return &tail{max: max}
}

func (t *tail) add(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

func (t *tail) String() string {
	return strings.Join(t.lines, "\n")
}
