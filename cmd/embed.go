package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/encypherai/c2pa-text/internal/document"
)

// EmbedResult holds the outcome of embedding a manifest into a text file.
type EmbedResult struct {
	Path         string `json:"path"`
	ManifestSize int    `json:"manifest_size"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replaced     bool   `json:"replaced"`
}

// EmbedRunner defines the interface for embedding manifests into text files.
type EmbedRunner interface {
	Embed(ctx context.Context, textPath, manifestPath string, force, strict bool, output string) (*EmbedResult, error)
}

// NewEmbedCmd creates the embed command with the given runner.
func NewEmbedCmd(runner EmbedRunner) *cobra.Command {
	var jsonOutput bool
	var force bool
	var strict bool
	var output string

	cmd := &cobra.Command{
		Use:          "embed <text-file> <manifest-file>",
		Short:        "Embed a manifest into a text file as invisible characters",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debugf(cmd.ErrOrStderr(), "embedding %s into %s (force=%v)", args[1], args[0], force)
			result, err := runner.Embed(cmd.Context(), args[0], args[1], force, strict, output)
			if err != nil {
				var invalid *document.InvalidManifestError
				if errors.As(err, &invalid) {
					report := &ValidateResult{
						Path:        args[1],
						Valid:       false,
						PrimaryCode: invalid.Result.PrimaryCode().String(),
						Issues:      convertIssues(invalid.Result.Issues),
					}
					if jsonOutput || GetJSON() {
						formatValidateJSON(cmd.OutOrStdout(), report)
					} else {
						formatValidateHuman(cmd.OutOrStdout(), report)
					}
					return &ValidationFailedError{Issues: len(report.Issues)}
				}
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
			} else if result.Replaced {
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced manifest in %s (%d invisible bytes)\n", result.Path, result.Length)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Embedded %d-byte manifest into %s (%d invisible bytes)\n", result.ManifestSize, result.Path, result.Length)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Skip manifest validation and replace an existing embedding")
	cmd.Flags().BoolVar(&strict, "strict", false, "Require a description box with a recognized content type")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the combined text to a file instead of in place")

	return cmd
}
