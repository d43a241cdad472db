package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/joho/godotenv"
)

const (
	// SandboxDirName is the sandbox directory below the working directory.
	SandboxDirName = ".venv"

	// ProjectFileName is the optional per-project configuration file.
	ProjectFileName = "xvenv.toml"

	DefaultPython = "python3"
	DefaultShell  = "bash"
)

// DefaultTools is the tool set installed by the tools step.
var DefaultTools = []string{"setuptools", "twine", "wheel", "black", "flake8"}

// DefaultLinters are the quality checks run by the check step.
// Each entry is a python module invocation.
var DefaultLinters = []string{"flake8 .", "black --check ."}

// DefaultCleanPatterns are the build artifacts removed by clean.
var DefaultCleanPatterns = []string{"build", "dist", "*.egg-info"}

// Settings is the per-process configuration shared read-only by all handlers.
type Settings struct {
	WorkDir  string
	Python   string
	Shell    string
	Verbose  bool
	Debug    bool
	KeepTemp bool

	Tools         ToolSet
	Linters       []string
	CleanPatterns []string

	// EnvFile is a dotenv file whose variables are exported to sandbox commands.
	EnvFile string

	// StateDir holds the run history.
	StateDir string
}

// ProjectFile mirrors xvenv.toml.
type ProjectFile struct {
	Python  string   `toml:"python"`
	Shell   string   `toml:"shell"`
	Tools   []string `toml:"tools"`
	Linters []string `toml:"linters"`
	Clean   []string `toml:"clean"`
	EnvFile string   `toml:"env_file"`
}

// Default returns settings for the current directory.
func Default() *Settings {
	return &Settings{
		WorkDir:       ".",
		Python:        DefaultPython,
		Shell:         DefaultShell,
		Tools:         NewToolSet(DefaultTools...),
		Linters:       append([]string(nil), DefaultLinters...),
		CleanPatterns: append([]string(nil), DefaultCleanPatterns...),
		StateDir:      DefaultStateDir(),
	}
}

// DefaultStateDir returns $XDG_STATE_HOME/xvenv, falling back to ~/.local/state/xvenv.
func DefaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "xvenv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "xvenv-state")
	}
	return filepath.Join(home, ".local", "state", "xvenv")
}

// LoadProjectFile reads a TOML project file.
// A missing file is not an error when optional is true.
func LoadProjectFile(path string, optional bool) (*ProjectFile, error) {
	var pf ProjectFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}
	return &pf, nil
}

// DecodeProjectFile parses TOML project file content.
func DecodeProjectFile(data string) (*ProjectFile, error) {
	var pf ProjectFile
	if _, err := toml.Decode(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}
	return &pf, nil
}

// Apply merges the non-empty fields of a project file into the settings.
func (s *Settings) Apply(pf *ProjectFile) {
	if pf == nil {
		return
	}
	if pf.Python != "" {
		s.Python = pf.Python
	}
	if pf.Shell != "" {
		s.Shell = pf.Shell
	}
	if len(pf.Tools) > 0 {
		s.Tools = NewToolSet(pf.Tools...)
	}
	if pf.Linters != nil {
		s.Linters = append([]string(nil), pf.Linters...)
	}
	if len(pf.Clean) > 0 {
		s.CleanPatterns = append([]string(nil), pf.Clean...)
	}
	if pf.EnvFile != "" {
		s.EnvFile = pf.EnvFile
	}
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if s.WorkDir == "" {
		return fmt.Errorf("working directory is required")
	}
	if s.Python == "" {
		return fmt.Errorf("python interpreter is required")
	}
	if s.Shell == "" {
		return fmt.Errorf("shell is required")
	}
	return nil
}

// SandboxRoot returns the sandbox directory. The path is joined lexically,
// a symlinked .venv is returned as the link itself.
func (s *Settings) SandboxRoot() string {
	return filepath.Join(s.WorkDir, SandboxDirName)
}

// ProjectPath joins rel to the working directory without following symlinks.
//
// rel must be local and must not name the working directory itself. A path
// whose parent directories pass through a symlink is rejected. The last
// element is not resolved so callers can Lstat it and unlink a symlink
// instead of its target.
func (s *Settings) ProjectPath(rel string) (string, error) {
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("path %q is not inside the working directory", rel)
	}
	rel = filepath.Clean(rel)
	if rel == "." {
		return "", fmt.Errorf("path %q names the working directory", rel)
	}

	root, err := filepath.Abs(s.WorkDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if parent := filepath.Dir(rel); parent != "." {
		resolved, err := securejoin.SecureJoin(root, parent)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", parent, err)
		}
		if resolved != filepath.Join(root, parent) {
			return "", fmt.Errorf("path %q passes through a symlink", rel)
		}
	}

	return filepath.Join(root, rel), nil
}

// Environ returns the KEY=VALUE pairs from the env file, if any.
// Relative env file paths are resolved against the working directory.
func (s *Settings) Environ() ([]string, error) {
	if s.EnvFile == "" {
		return nil, nil
	}

	path := s.EnvFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.WorkDir, path)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env, nil
}
