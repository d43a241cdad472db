package system

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	xerrors "github.com/kr-g/xvenv/internal/errors"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOSRunner_Success(t *testing.T) {
	requireShell(t)

	var sink bytes.Buffer
	r := NewRunner(&sink)

	result, err := r.Run(context.Background(), Invocation{Args: []string{"sh", "-c", "echo one; echo two"}})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !result.Success() {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if sink.String() != "one\ntwo\n" {
		t.Errorf("sink = %q, want %q", sink.String(), "one\ntwo\n")
	}
	if result.Output != "one\ntwo" {
		t.Errorf("Output = %q, want %q", result.Output, "one\ntwo")
	}
}

func TestOSRunner_MergesStderr(t *testing.T) {
	requireShell(t)

	var sink bytes.Buffer
	r := NewRunner(&sink)

	_, err := r.Run(context.Background(), Invocation{Args: []string{"sh", "-c", "echo out; echo err 1>&2"}})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(sink.String(), "out") || !strings.Contains(sink.String(), "err") {
		t.Errorf("sink should contain both streams, got %q", sink.String())
	}
}

func TestOSRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	r := NewRunner(nil)
	result, err := r.Run(context.Background(), Invocation{Args: []string{"sh", "-c", "echo boom; exit 3"}})
	if err != nil {
		t.Fatalf("non-zero exit must not be a start error: %v", err)
	}
	if result.Success() {
		t.Error("result should not be successful")
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if result.Output != "boom" {
		t.Errorf("Output = %q, want %q", result.Output, "boom")
	}
}

func TestOSRunner_StartFailure(t *testing.T) {
	r := NewRunner(nil)
	result, err := r.Run(context.Background(), Invocation{Args: []string{"xvenv-no-such-program-42"}})
	if err == nil {
		t.Fatal("expected start error")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if !xerrors.IsStartFailure(err) {
		t.Errorf("error should be a start failure: %v", err)
	}
	if xerrors.GetExitCode(err) != xerrors.ExitStartFailed {
		t.Errorf("GetExitCode() = %d, want %d", xerrors.GetExitCode(err), xerrors.ExitStartFailed)
	}
}

func TestOSRunner_EmptyInvocation(t *testing.T) {
	r := NewRunner(nil)
	if _, err := r.Run(context.Background(), Invocation{}); err == nil {
		t.Fatal("expected error for empty invocation")
	}
}

func TestOSRunner_DirAndEnv(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	r := NewRunner(nil)
	result, err := r.Run(context.Background(), Invocation{
		Args: []string{"sh", "-c", `pwd; echo "$XVENV_TEST_VALUE"`},
		Dir:  dir,
		Env:  []string{"XVENV_TEST_VALUE=hello"},
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	lines := strings.Split(result.Output, "\n")
	if len(lines) != 2 {
		t.Fatalf("Output = %q, want two lines", result.Output)
	}
	wantDir, _ := filepath.EvalSymlinks(dir)
	gotDir, _ := filepath.EvalSymlinks(lines[0])
	if gotDir != wantDir {
		t.Errorf("pwd = %q, want %q", gotDir, wantDir)
	}
	if lines[1] != "hello" {
		t.Errorf("env value = %q, want %q", lines[1], "hello")
	}
}

func TestOSRunner_TailKeepsLastLines(t *testing.T) {
	requireShell(t)

	r := NewRunner(nil)
	result, err := r.Run(context.Background(), Invocation{Args: []string{"sh", "-c", "i=0; while [ $i -lt 100 ]; do echo line$i; i=$((i+1)); done"}})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	lines := strings.Split(result.Output, "\n")
	if len(lines) != tailLines {
		t.Fatalf("kept %d lines, want %d", len(lines), tailLines)
	}
	if lines[len(lines)-1] != "line99" {
		t.Errorf("last line = %q, want line99", lines[len(lines)-1])
	}
}

func TestOSRunner_StreamsPastLongLines(t *testing.T) {
	requireShell(t)

	var sink bytes.Buffer
	r := NewRunner(&sink)
	result, err := r.Run(context.Background(), Invocation{Args: []string{"sh", "-c", "head -c 2097152 /dev/zero | tr '\\0' x; echo; echo after"}})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", result.ExitCode)
	}

	lines := strings.Split(strings.TrimSuffix(sink.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("sink got %d lines, want 2", len(lines))
	}
	if len(lines[0]) != 2097152 {
		t.Errorf("long line length = %d, want 2097152", len(lines[0]))
	}
	if lines[1] != "after" {
		t.Errorf("line after the long one = %q, want %q", lines[1], "after")
	}
	if !strings.HasSuffix(result.Output, "\nafter") {
		t.Error("tail should end with the line after the long one")
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	if err := os.WriteFile(src, []byte("binary"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "binary" {
		t.Errorf("dst content = %q, want %q", data, "binary")
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("dst mode = %v, want executable bit kept", info.Mode())
	}
}
