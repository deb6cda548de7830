package main

import "fmt"

// Exit codes.
const (
	ExitSuccess      = 0 // all checks passed
	ExitFailure      = 1 // at least one check failed
	ExitCommandError = 2 // invalid arguments, unreadable files, invalid suites
)

// ExitError is an error carrying the exit code of the command.
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

// NewExitError creates an error with an exit code.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}
