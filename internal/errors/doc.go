// Package errors provides typed errors with exit codes for xvenv.
//
// # Error Types
//
// XvenvError is the base error type that wraps an error with an exit code:
//
//	type XvenvError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // Step failures, argument errors, missing targets
//	ExitConfigError  = 3  // Configuration error
//	ExitStartFailed  = 4  // A program could not be started
//
// # Error Constructors
//
//	errors.StepFailed("build", err)
//	errors.StartFailed("python3", err)
//	errors.UnknownOptions([]string{"--bogus"})
//	errors.NotFound("folder", "/work/.venv")
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
