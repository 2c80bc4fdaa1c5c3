package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ValidationFailedError is returned when a command surfaces validation
// findings. Findings are reported as command output, so they map to a
// distinct exit code rather than a plain failure.
type ValidationFailedError struct {
	Issues int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation found %d issue(s)", e.Issues)
}

// ExitCode returns the exit code for validation findings (always 2).
func (e *ValidationFailedError) ExitCode() int {
	return 2
}

// NoWrapperError is returned when extract finds no embedded manifest in the
// target. Absence is a scan finding, so it shares the findings exit code.
type NoWrapperError struct {
	Path string
}

// Error implements the error interface.
func (e *NoWrapperError) Error() string {
	return fmt.Sprintf("no embedded manifest found in %s", e.Path)
}

// ExitCode returns the exit code for a missing embedding (always 2).
func (e *NoWrapperError) ExitCode() int {
	return 2
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// FormatError formats an error with the "c2patext: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("c2patext: %s\n", err.Error())
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the appropriate exit code.
func RunCLI(ctx context.Context, cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return ExitCodeFromError(err)
	}
	return 0
}
