package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/encypherai/c2pa-text/internal/wrapper"
)

// WrapResult holds the outcome of framing a manifest.
type WrapResult struct {
	Path         string `json:"path"`
	ManifestSize int    `json:"manifest_size"`
	WrappedSize  int    `json:"wrapped_size"`
}

// WrapRunner defines the interface for framing manifest files.
type WrapRunner interface {
	Wrap(ctx context.Context, manifestPath string) ([]byte, error)
}

// NewWrapCmd creates the wrap command with the given runner.
func NewWrapCmd(runner WrapRunner) *cobra.Command {
	var jsonOutput bool
	var output string

	cmd := &cobra.Command{
		Use:          "wrap <manifest-file>",
		Short:        "Frame a JUMBF manifest with the fixed text wrapper header",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := runner.Wrap(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			// Without --output the raw wrapper bytes go to stdout.
			if err := writeBytes(cmd.OutOrStdout(), output, data); err != nil {
				return &ContextError{Op: "wrap", Path: output, Err: err}
			}
			if output == "" {
				return nil
			}

			result := &WrapResult{
				Path:         output,
				ManifestSize: len(data) - wrapper.HeaderSize,
				WrappedSize:  len(data),
			}
			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, result.WrappedSize)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write wrapper bytes to a file instead of stdout")

	return cmd
}
