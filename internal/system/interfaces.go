// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
	"os"
	"path/filepath"
)

// Invocation describes one external process to launch.
type Invocation struct {
	// Args holds the program followed by its arguments.
	Args []string

	// Dir is the working directory; empty means the current one.
	Dir string

	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string
}

// Program returns the program name, or "" for an empty invocation.
func (i Invocation) Program() string {
	if len(i.Args) == 0 {
		return ""
	}
	return i.Args[0]
}

// Result is the outcome of a process that was started.
type Result struct {
	// ExitCode is 0 on success.
	ExitCode int

	// Output holds the last lines of the merged stdout/stderr stream.
	Output string
}

// Success reports whether the process exited cleanly.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Runner abstracts process execution for testability.
//
// A program that cannot be started yields a nil Result and an error;
// a program that ran and exited non-zero yields a Result and a nil error.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// SelfLocator finds the file of the running program.
type SelfLocator interface {
	Executable() (string, error)
}

// DefaultLocator returns the SelfLocator backed by os.Executable.
func DefaultLocator() SelfLocator {
	return osLocator{}
}

// osLocator resolves the running binary through os.Executable.
type osLocator struct{}

func (osLocator) Executable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(path)
}

// CopyFile copies a file from src to dst, keeping the source mode.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode())
}
