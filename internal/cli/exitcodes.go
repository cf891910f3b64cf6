package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, storage timeouts, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Card not found, board not found, column name not on the board.
	ExitNotFound = 3

	// ExitDataErr indicates data that contradicts what is stored.
	// Use for: Referential errors such as a column of another board.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, negative positions, or any input that fails
	// validation rules.
	ExitValidation = 5
)

// CommandError carries the exit code a failed command should end with
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CommandError{Code: code, Err: err}
}

// Exitf builds a CommandError from a format string
func Exitf(code int, format string, args ...any) error {
	return &CommandError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode returns the process exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// classify maps a board service error to an error code and exit code
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, board.ErrValidation):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, board.ErrNotFound):
		return "NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrReferential):
		return "REFERENTIAL_ERROR", ExitDataErr
	case errors.Is(err, board.ErrStorageTimeout):
		return "STORAGE_TIMEOUT", ExitError
	default:
		return "INTERNAL_ERROR", ExitError
	}
}
