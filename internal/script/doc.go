// Package script runs command lines inside the sandbox.
//
// Compose renders a small shell script that changes into the working
// directory, activates the sandbox and then runs the payload:
//
//	#!/usr/bin/env bash
//	cd /home/me/project
//	. .venv/bin/activate
//	python3 -m pip install -e .
//
// Executor writes that text to a uniquely named temporary file, runs it with
// the configured shell through a system.Runner and removes the file again,
// unless KeepTemp is set.
//
// Callers that start from a token list join it with JoinArgs so that every
// token reaches the payload as exactly one shell word.
package script
