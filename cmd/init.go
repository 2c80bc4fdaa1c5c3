package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/encypherai/c2pa-text/internal/config"
)

// defaultConfigYAML is the scaffold init writes.
const defaultConfigYAML = `# c2patext configuration.

# strict requires manifests to carry a description box with a recognized
# content type.
strict: false

# Content type UUIDs recognized during strict validation, in canonical
# 8-4-4-4-12 form. An empty list means the C2PA manifest store UUID.
recognized_uuids: []
`

// NewInitCmd creates the init command. The getwd function returns the working
// directory where the config file will be created.
func NewInitCmd(getwd func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:          "init",
		Short:        "Create a default config file in the current directory",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			path := filepath.Join(cwd, config.DefaultFilename)
			if _, statErr := os.Stat(path); statErr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists at %s\n", path)
				return nil
			}

			if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
