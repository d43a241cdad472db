package sandbox

import (
	"path/filepath"

	"github.com/kr-g/xvenv/internal/config"
	"github.com/kr-g/xvenv/internal/system"
)

// Descriptor identifies the sandbox of one working directory.
type Descriptor struct {
	WorkDir string
}

// NewDescriptor returns the descriptor for the configured working directory.
func NewDescriptor(s *config.Settings) Descriptor {
	return Descriptor{WorkDir: s.WorkDir}
}

// Root returns the sandbox directory. A symlinked .venv is not followed.
func (d Descriptor) Root() string {
	s := config.Settings{WorkDir: d.WorkDir}
	return s.SandboxRoot()
}

// CreateOptions configures sandbox creation.
type CreateOptions struct {
	// Clear deletes an existing sandbox before creating it.
	Clear bool

	// Copy uses file copies instead of symlinks for the interpreter.
	Copy bool
}

// CreateInvocation returns the invocation that creates the sandbox with python.
func CreateInvocation(d Descriptor, python string, opts CreateOptions) system.Invocation {
	args := []string{python, "-m", "venv", config.SandboxDirName}
	if opts.Clear {
		args = append(args, "--clear")
	}
	if opts.Copy {
		args = append(args, "--copies")
	} else {
		args = append(args, "--symlinks")
	}

	return system.Invocation{
		Args: args,
		Dir:  filepath.Clean(d.WorkDir),
	}
}
