package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// UnwrapResult holds the outcome of validating and unframing a wrapper file.
// Payload is the recovered JUMBF manifest, non-nil only when Valid.
type UnwrapResult struct {
	Path           string            `json:"path"`
	Valid          bool              `json:"valid"`
	PrimaryCode    string            `json:"primary_code"`
	Version        *int              `json:"version,omitempty"`
	DeclaredLength *uint32           `json:"declared_length,omitempty"`
	PayloadSize    int               `json:"payload_size"`
	Issues         []ValidationIssue `json:"issues,omitempty"`
	Payload        []byte            `json:"-"`
}

// UnwrapRunner defines the interface for unframing wrapper files.
type UnwrapRunner interface {
	Unwrap(ctx context.Context, path string) (*UnwrapResult, error)
}

// NewUnwrapCmd creates the unwrap command with the given runner.
func NewUnwrapCmd(runner UnwrapRunner) *cobra.Command {
	var jsonOutput bool
	var output string

	cmd := &cobra.Command{
		Use:          "unwrap <wrapped-file>",
		Short:        "Validate a wrapper file and recover its JUMBF payload",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Unwrap(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !result.Valid {
				if jsonOutput || GetJSON() {
					writeJSON(cmd.OutOrStdout(), result)
				} else {
					formatValidateHuman(cmd.OutOrStdout(), &ValidateResult{
						Path:   result.Path,
						Valid:  false,
						Issues: result.Issues,
					})
				}
				return &ValidationFailedError{Issues: len(result.Issues)}
			}

			// Without --output the raw payload bytes go to stdout.
			if err := writeBytes(cmd.OutOrStdout(), output, result.Payload); err != nil {
				return &ContextError{Op: "unwrap", Path: output, Err: err}
			}
			if output == "" {
				return nil
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, result.PayloadSize)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the payload to a file instead of stdout")

	return cmd
}
