package cli

import (
	"fmt"
	"path/filepath"

	"arch-rule-checker/internal/config"

	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default arch-config.json unless one already exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if existing, ok := config.Locate(dir); ok {
				fmt.Fprintf(out, "Using configuration file at: %s\n", existing)
				return nil
			}

			path := filepath.Join(dir, config.FileName)
			created, err := config.WriteDefault(path)
			if err != nil {
				return &CLIError{Code: ExitError, Message: "create default configuration", Err: err}
			}
			if created {
				fmt.Fprintf(out, "No configuration file found. Created default configuration at %s\n", path)
			}
			fmt.Fprintln(out, "You can create your own configuration file at any of these locations:")
			for _, loc := range config.Locations(dir) {
				fmt.Fprintf(out, "- %s\n", loc)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to create the configuration in")
	return cmd
}
