package cli

import "fmt"

// ExitCode is the process status of arc-cli.
type ExitCode int

const (
	// ExitSuccess means the run completed and found nothing.
	ExitSuccess ExitCode = 0

	// ExitViolations means the run completed and found architecture violations.
	ExitViolations ExitCode = 1

	// ExitError means the run could not complete (unreadable source root,
	// invalid flags, output failure).
	ExitError ExitCode = 2
)

// CLIError carries the exit code a command failed with.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}
