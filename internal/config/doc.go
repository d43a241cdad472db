// Package config provides configuration for xvenv.
//
// # Settings
//
// Settings is the configuration object handed to every handler. It is built
// once per process from three layers, later layers winning:
//
//  1. Defaults (see Default)
//  2. The TOML project file, xvenv.toml in the working directory
//  3. Command-line flags that were set explicitly
//
// # Project File
//
//	python = "python3.12"
//	shell = "bash"
//	tools = ["setuptools", "wheel", "build"]
//	linters = ["flake8 .", "black --check ."]
//	clean = ["build", "dist", "*.egg-info"]
//	env_file = ".env"
//
// # Sandbox Directory
//
// The sandbox always lives in SandboxDirName below the working directory.
// SandboxRoot joins it lexically and never follows a symlinked .venv.
// ProjectPath confines relative paths such as clean targets: parents are
// checked with filepath-securejoin and the last element is left unresolved.
package config
