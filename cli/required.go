package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NoArgs validates that the command takes no positional arguments.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return errors.New("\n" + strings.TrimRight(cmd.UsageString(), "\n"))
	}
	return argsError(cmd, "accepts no arguments")
}

// RequiresMinArgs is used by commands that hand the rest of the command
// line to another program, like init.
func RequiresMinArgs(min int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= min {
			return nil
		}
		return argsError(cmd, fmt.Sprintf("requires at least %d %s", min, pluralize("argument", min)))
	}
}

// ExactArgs returns an error if there is not the exact number of args
func ExactArgs(number int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == number {
			return nil
		}
		return argsError(cmd, fmt.Sprintf("requires exactly %d %s", number, pluralize("argument", number)))
	}
}

func argsError(cmd *cobra.Command, problem string) error {
	return errors.Errorf("%q %s.\nSee '%s --help'.\n\nUsage:  %s\n\n%s",
		cmd.CommandPath(), problem, cmd.CommandPath(), cmd.UseLine(), cmd.Short)
}

func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}
	return word + "s"
}
