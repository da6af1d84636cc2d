package cli

import (
	"fmt"

	"arch-rule-checker/internal/report"
	"arch-rule-checker/internal/runner"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	sourcePath   string
	configPath   string
	format       string
	workers      int
	includeTests bool
	showSource   bool
}

func newCheckCommand() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report use-case methods that return domain model types",
		Long: `check scans --source-path for Go files in the use-case layer (file name
containing "usecase", or a path with both "core" and "usecases" directories)
and reports every method that returns a configured model type.

Exit status: 0 when clean, 1 when violations were found, 2 on errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.sourcePath, "source-path", envOr(EnvSourcePath, "."), "directory to scan recursively")
	cmd.Flags().StringVar(&opts.configPath, "config-path", envOr(EnvConfigPath, ""), "configuration file (default: probe arch-config.json under the source path)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "files analyzed concurrently (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.includeTests, "include-tests", false, "also analyze _test.go files")
	cmd.Flags().BoolVar(&opts.showSource, "show-source", false, "print the offending declaration under each violation")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return &CLIError{Code: ExitError, Message: fmt.Sprintf("unknown format %q", opts.format)}
	}
	if opts.workers < 0 {
		return &CLIError{Code: ExitError, Message: "--workers must not be negative"}
	}

	res, err := runner.Run(cmd.Context(), runner.Request{
		SourcePath:   opts.sourcePath,
		ConfigPath:   opts.configPath,
		IncludeTests: opts.includeTests,
		Workers:      opts.workers,
	})
	if err != nil {
		return &CLIError{Code: ExitError, Message: "check failed", Err: err}
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		err = report.JSON(out, res.Report, uuid.New())
	default:
		err = report.Text(out, res.Report, report.TextOptions{ShowSource: opts.showSource})
	}
	if err != nil {
		return &CLIError{Code: ExitError, Message: "write report", Err: err}
	}

	if res.Report.HasViolations() {
		return &CLIError{
			Code:    ExitViolations,
			Message: fmt.Sprintf("%d architecture violation(s) found", res.Report.Summary.Violations),
		}
	}
	return nil
}
