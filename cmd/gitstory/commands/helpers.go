package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/internal/output"
)

// usageError marks err as a command-line mistake with a pointer to help.
func usageError(c *cobra.Command, err error) error {
	return errors.NewUserError(
		errors.Mark(err, errors.ErrUsage),
		fmt.Sprintf("Run '%s --help' for usage", c.CommandPath()),
	)
}

// usageArgs wraps a positional-args validator so failures are usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if err := validate(c, args); err != nil {
			return usageError(c, err)
		}
		return nil
	}
}

// notImplemented emits the closing advisory of a placeholder command.
func notImplemented(out *output.Formatter, feature string) {
	out.Warning(feature + " is not yet implemented")
}
