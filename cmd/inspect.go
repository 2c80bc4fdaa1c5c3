package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// InspectResult describes the embedding found in a text file. When Found is
// false only Path is meaningful.
type InspectResult struct {
	Path         string            `json:"path"`
	Found        bool              `json:"found"`
	Offset       int               `json:"offset,omitempty"`
	Length       int               `json:"length,omitempty"`
	ManifestSize int               `json:"manifest_size,omitempty"`
	Valid        bool              `json:"valid"`
	Issues       []ValidationIssue `json:"issues,omitempty"`
}

// InspectRunner defines the interface for inspecting text files.
type InspectRunner interface {
	Inspect(ctx context.Context, path string) (*InspectResult, error)
}

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// shouldColorize reports whether w is a terminal that accepts ANSI color.
func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// structureCell renders the strict structure column, colorized on terminals.
func structureCell(result *InspectResult, colorize bool) string {
	cell := "valid"
	if !result.Valid {
		cell = "invalid"
		if len(result.Issues) > 0 {
			cell = fmt.Sprintf("invalid (%s)", result.Issues[0].Code)
		}
	}
	if !colorize {
		return cell
	}
	if result.Valid {
		return ansiGreen + cell + ansiReset
	}
	return ansiRed + cell + ansiReset
}

// renderInspectTable writes the embedding details as a two-column table.
func renderInspectTable(w io.Writer, result *InspectResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"File", result.Path},
		{"Offset", result.Offset},
		{"Invisible bytes", result.Length},
		{"Manifest size", result.ManifestSize},
		{"Structure", structureCell(result, shouldColorize(w))},
	})
	tw.Render()
}

// NewInspectCmd creates the inspect command with the given runner.
func NewInspectCmd(runner InspectRunner) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "inspect <text-file>",
		Short:        "Show details of the manifest embedded in a text file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
				return nil
			}
			if !result.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "No embedded manifest found in %s\n", result.Path)
				return nil
			}
			renderInspectTable(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
