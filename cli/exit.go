// Package cli implements the blockflow command-line interface: validating
// workflow files against the block catalog, resolving individual nodes, and
// inspecting the catalog and saved workflows.
package cli

import "fmt"

// Exit codes returned by CLI commands.
const (
	exitValidation   = 2
	exitFileNotFound = 3
	exitNotFound     = 4
)

// ExitError is an error that carries a specific process exit code.
// Cobra's RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
