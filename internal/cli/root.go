// Package cli implements the cobra commands of arc-cli.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"arch-rule-checker/internal/logger"

	"github.com/spf13/cobra"
)

// Environment variables consulted for flag defaults. main loads them from a
// .env file when present.
const (
	EnvSourcePath = "ARC_SOURCE"
	EnvConfigPath = "ARC_CONFIG"
)

var Version = "dev"

type rootOptions struct {
	debug   bool
	logJSON bool
}

// NewRootCommand builds arc-cli with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "arc-cli",
		Short: "Check that use cases never return domain model types",
		Long: `arc-cli scans a Go source tree, finds the use-case layer by file name and
path, and reports every use-case method whose return type exposes a configured
domain model type instead of a response or DTO type.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{
				Debug:  opts.debug,
				JSON:   opts.logJSON,
				Writer: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newInitCommand())
	return cmd
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return int(ExitSuccess)
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Code != ExitViolations {
			printError(cmd.ErrOrStderr(), cliErr.Error())
		}
		return int(cliErr.Code)
	}
	printError(cmd.ErrOrStderr(), err.Error())
	return int(ExitError)
}

func printError(w io.Writer, msg string) {
	fmt.Fprintf(w, "Error: %s\n", msg)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
