package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ValidationIssue is a single validation finding in CLI output.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateResult holds the outcome of validating a manifest file.
type ValidateResult struct {
	Path        string            `json:"path"`
	Valid       bool              `json:"valid"`
	PrimaryCode string            `json:"primary_code"`
	Issues      []ValidationIssue `json:"issues"`
}

// ValidateRunner defines the interface for validating manifest files.
type ValidateRunner interface {
	ValidateManifest(ctx context.Context, path string, strict bool) (*ValidateResult, error)
}

// formatValidateJSON writes the result as JSON to w.
func formatValidateJSON(w io.Writer, result *ValidateResult) {
	if result.Issues == nil {
		result.Issues = []ValidationIssue{}
	}
	writeJSON(w, result)
}

// formatValidateHuman writes the validation report to w.
func formatValidateHuman(w io.Writer, result *ValidateResult) {
	if result.Valid {
		fmt.Fprintln(w, "Validation passed: manifest is structurally compliant")
		return
	}
	fmt.Fprintln(w, "Validation failed:")
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "  - [%s] %s\n", issue.Code, issue.Message)
	}
}

// runValidateAndReport validates the manifest file and renders findings as
// JSON or human-readable text. It returns a ValidationFailedError when the
// manifest does not validate.
func runValidateAndReport(cmd *cobra.Command, runner ValidateRunner, path string, strict, jsonOutput bool) error {
	result, err := runner.ValidateManifest(cmd.Context(), path, strict)
	if err != nil {
		return err
	}

	if jsonOutput {
		formatValidateJSON(cmd.OutOrStdout(), result)
	} else {
		formatValidateHuman(cmd.OutOrStdout(), result)
	}

	if !result.Valid {
		return &ValidationFailedError{Issues: len(result.Issues)}
	}
	return nil
}

// NewValidateCmd creates the validate command with the given runner.
func NewValidateCmd(runner ValidateRunner) *cobra.Command {
	var jsonOutput bool
	var strict bool

	cmd := &cobra.Command{
		Use:          "validate <manifest-file>",
		Short:        "Validate the JUMBF container structure of a manifest file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debugf(cmd.ErrOrStderr(), "validating %s (strict=%v)", args[0], strict)
			return runValidateAndReport(cmd, runner, args[0], strict, jsonOutput || GetJSON())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Require a description box with a recognized content type")

	return cmd
}
