// Package testutil provides test utilities for command tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kr-g/xvenv/internal/app"
	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/config"
	"github.com/kr-g/xvenv/internal/system"
)

// FakeConfirmer answers every question with Answer and records the questions.
type FakeConfirmer struct {
	Answer bool
	Err    error
	Asked  []string
}

// Confirm implements tui.Confirmer.
func (f *FakeConfirmer) Confirm(question string) (bool, error) {
	f.Asked = append(f.Asked, question)
	return f.Answer, f.Err
}

// TestEnv holds the test environment
type TestEnv struct {
	T         *testing.T
	TmpDir    string
	WorkDir   string
	StateDir  string
	Binary    string
	Runner    *system.MockRunner
	Confirmer *FakeConfirmer
	Audit     *audit.Logger
	App       *app.App
	cleanup   func()
}

// NewTestEnv creates a new test environment with a mock runner
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	workDir := filepath.Join(tmpDir, "project")
	stateDir := filepath.Join(tmpDir, "state")
	binDir := filepath.Join(tmpDir, "bin")

	for _, dir := range []string{workDir, stateDir, binDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// Fake binary for clone
	binary := filepath.Join(binDir, "xvenv")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\necho xvenv\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake binary: %v", err)
	}

	t.Setenv("XDG_STATE_HOME", tmpDir)

	runner := system.NewMockRunner()
	confirmer := &FakeConfirmer{}
	auditLogger := audit.NewLogger(stateDir)

	testApp := app.New(
		app.WithRunner(runner),
		app.WithLocator(system.StaticLocator(binary)),
		app.WithConfirmer(confirmer),
		app.WithAudit(auditLogger),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:         t,
		TmpDir:    tmpDir,
		WorkDir:   workDir,
		StateDir:  stateDir,
		Binary:    binary,
		Runner:    runner,
		Confirmer: confirmer,
		Audit:     auditLogger,
		App:       testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// Settings returns default settings pointing at the test working directory
func (e *TestEnv) Settings() *config.Settings {
	s := config.Default()
	s.WorkDir = e.WorkDir
	s.StateDir = e.StateDir
	return s
}

// CreateSandbox creates a fake sandbox with an activation script
func (e *TestEnv) CreateSandbox() string {
	e.T.Helper()

	root := filepath.Join(e.WorkDir, config.SandboxDirName)
	bin := filepath.Join(root, "bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		e.T.Fatalf("Failed to create sandbox: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bin, "activate"), []byte("export VIRTUAL_ENV="+root+"\n"), 0644); err != nil {
		e.T.Fatalf("Failed to write activate script: %v", err)
	}
	return root
}

// WriteFile writes a file relative to the working directory
func (e *TestEnv) WriteFile(rel, content string) string {
	e.T.Helper()

	path := filepath.Join(e.WorkDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// Exists reports whether a path relative to the working directory exists
func (e *TestEnv) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.WorkDir, rel))
	return err == nil
}

// Events returns the audit events recorded for the working directory
func (e *TestEnv) Events() []audit.Event {
	e.T.Helper()

	events, err := e.Audit.Events(audit.ProjectKey(e.WorkDir))
	if err != nil {
		e.T.Fatalf("Failed to read events: %v", err)
	}
	return events
}
