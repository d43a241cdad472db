package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for xvenv
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 3
	ExitStartFailed  = 4
)

// XvenvError is the base error type for xvenv
type XvenvError struct {
	Code    int
	Message string
	Cause   error
}

func (e *XvenvError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *XvenvError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *XvenvError) ExitCode() int {
	return e.Code
}

// New creates a new XvenvError
func New(code int, message string) *XvenvError {
	return &XvenvError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an XvenvError
func Wrap(code int, message string, cause error) *XvenvError {
	return &XvenvError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// StepFailed returns an error for a failed workflow step.
// The step name is kept in the message so the user sees which step broke.
func StepFailed(step string, cause error) *XvenvError {
	return Wrap(ExitGeneralError, fmt.Sprintf("%s failed", step), cause)
}

// ExitStatus returns an error for a program that ran and exited non-zero.
func ExitStatus(program string, code int) *XvenvError {
	return New(ExitGeneralError, fmt.Sprintf("%s exited with status %d", program, code))
}

// StartFailed returns an error for a program that could not be launched
func StartFailed(program string, cause error) *XvenvError {
	return Wrap(ExitStartFailed, fmt.Sprintf("failed to start %s", program), cause)
}

// UnknownOptions returns an error for leftover arguments of a closed subcommand
func UnknownOptions(rest []string) *XvenvError {
	return New(ExitGeneralError, fmt.Sprintf("unknown opts %s", strings.Join(rest, " ")))
}

// NotFound returns an error for a missing or mistyped target path
func NotFound(what, path string) *XvenvError {
	return New(ExitGeneralError, fmt.Sprintf("not found %s %s", what, path))
}

// RemoveFailed returns an error when some paths could not be deleted
func RemoveFailed(path string, failures int) *XvenvError {
	return New(ExitGeneralError, fmt.Sprintf("failed to remove %d entries under %s", failures, path))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *XvenvError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *XvenvError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var xerr *XvenvError
	if errors.As(err, &xerr) {
		return xerr.ExitCode()
	}
	return ExitGeneralError
}

// IsStartFailure reports whether err, or anything it wraps, is a process-start failure.
func IsStartFailure(err error) bool {
	for err != nil {
		var xerr *XvenvError
		if !errors.As(err, &xerr) {
			return false
		}
		if xerr.Code == ExitStartFailed {
			return true
		}
		err = xerr.Cause
	}
	return false
}
