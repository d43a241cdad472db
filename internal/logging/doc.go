// Package logging provides logging utilities for xvenv.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for diagnostics (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and enabled by the --debug flag;
// --json switches the format:
//
//	logging.Setup(logging.Options{Debug: debug, JSON: jsonOutput})
//	logging.Debug("run", "args", inv.Args)
//	logging.Info("keeping temporary script", "path", path)
//
// Workflow steps log through ForStep so every record names its project
// and step.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("building...")
//	logging.UserSuccess("sandbox ready in %s", root)
//	logging.UserWarning("could not remove %s", path)
//	logging.UserError("%s failed", step)
//	logging.UserStep(2, 6, "pip")
//	logging.UserOutput(res.Output)
//
// Output destinations:
//   - UserInfo, UserSuccess, UserStep: stdout
//   - UserWarning, UserError, UserOutput: stderr
//
// The writers can be redirected with SetUserOutput, which the command
// tests use to capture what a subcommand prints.
package logging
