package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/encypherai/c2pa-text/internal/stego"
)

// ExtractResult holds the outcome of extracting a manifest from a text file.
type ExtractResult struct {
	Path         string `json:"path"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	ManifestSize int    `json:"manifest_size"`
	Stripped     bool   `json:"stripped"`
	Manifest     []byte `json:"-"`
}

// ExtractRunner defines the interface for extracting manifests from text files.
type ExtractRunner interface {
	Extract(ctx context.Context, textPath string, strip bool) (*ExtractResult, error)
}

// NewExtractCmd creates the extract command with the given runner.
func NewExtractCmd(runner ExtractRunner) *cobra.Command {
	var jsonOutput bool
	var strip bool
	var output string

	cmd := &cobra.Command{
		Use:          "extract <text-file>",
		Short:        "Extract the embedded manifest from a text file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Extract(cmd.Context(), args[0], strip)
			if err != nil {
				if errors.Is(err, stego.ErrNoWrapper) {
					return &NoWrapperError{Path: args[0]}
				}
				return err
			}

			// Without --output the raw manifest bytes go to stdout.
			if err := writeBytes(cmd.OutOrStdout(), output, result.Manifest); err != nil {
				return &ContextError{Op: "extract", Path: output, Err: err}
			}
			if output == "" {
				return nil
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
			} else if result.Stripped {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes) and stripped %s\n", output, result.ManifestSize, result.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, result.ManifestSize)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&strip, "strip", false, "Remove the embedding from the text file after extraction")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the manifest to a file instead of stdout")

	return cmd
}
