package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the binary.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // runtime failure (store unreachable, UI crashed)
	ExitCommandError = 2 // bad flags or configuration
)

// ExitError carries the process exit code alongside the error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. nil maps to ExitSuccess
// and any other error without a code to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
