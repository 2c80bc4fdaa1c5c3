// Package cmd contains the CLI commands for the c2patext application.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// jsonGlobal holds the global --json flag state.
var jsonGlobal bool

// configPath holds the global --config flag state.
var configPath string

func init() {
	rootCmd = BuildCommandTree(nil, nil)
}

// GetVerbose returns the current verbose flag state.
// This is used by other packages to check if debug logging is enabled.
func GetVerbose() bool {
	return verbose
}

// GetJSON returns the current global JSON output flag state.
func GetJSON() bool {
	return jsonGlobal
}

// GetConfigPath returns the --config flag value, empty when unset.
func GetConfigPath() string {
	return configPath
}

// debugf writes a debug line to w when --verbose is set.
func debugf(w io.Writer, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(w, "debug: "+format+"\n", args...)
	}
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "c2patext",
		Short:         "Embed, extract, and validate C2PA manifests in plain text",
		Long:          "c2patext embeds C2PA JUMBF manifests into plain text as invisible Unicode characters, recovers them, and validates their container structure.",
		SilenceErrors: true,
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonGlobal, "json", false, "Output results as JSON")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a c2patext config file")

	return cmd
}

// BuildCommandTree creates the root command and registers every subcommand.
// A nil servicer installs the production wiring, which resolves the config
// file when a command runs; tests pass their own servicer.
func BuildCommandTree(svc documentServicer, getwd func() (string, error)) *cobra.Command {
	if getwd == nil {
		getwd = os.Getwd
	}
	wire := wireService
	if svc != nil {
		wire = fixedWire(svc)
	}

	root := NewRootCmd()
	root.AddCommand(NewValidateCmd(&validateAdapter{wire: wire}))
	root.AddCommand(NewWrapCmd(&wrapAdapter{wire: wire}))
	root.AddCommand(NewUnwrapCmd(&unwrapAdapter{wire: wire}))
	root.AddCommand(NewEmbedCmd(&embedAdapter{wire: wire}))
	root.AddCommand(NewExtractCmd(&extractAdapter{wire: wire}))
	root.AddCommand(NewInspectCmd(&inspectAdapter{wire: wire}))
	root.AddCommand(NewInitCmd(getwd))
	return root
}

// Root returns the package-level root command used by main.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command and returns any error.
// Deprecated: Use ExecuteContext instead for proper signal handling.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
