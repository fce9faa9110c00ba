package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrInvalidNumbers is returned when at least one number failed validation.
// It carries no message of its own: the results were already printed.
var ErrInvalidNumbers = errors.New("one or more identity numbers are invalid")

// UsageError marks errors caused by wrong flags, arguments or locales.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(err error) error {
	return &UsageError{err: err}
}

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
	ExitFailure = 3
)

func exitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidNumbers):
		return ExitInvalid
	case errors.As(err, &usageErr):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return NewUsageError(errors.Errorf("unknown command %q for %q", args[0], cmd.Name()))
	}
	return NewUsageError(errors.Errorf("%q accepts no arguments", cmd.Name()))
}
