package container

import (
	"fmt"

	"github.com/DeJeune/llbox/cli"
	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/runtime/pkg/generator"
	"github.com/docker/docker/errdefs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewGeneratorCommand(llboxCli *cmd.LlboxCli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Inspect and run single generators",
		Args:  cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.HelpFunc()(cmd, args)
			return nil
		},
	}
	cmd.AddCommand(
		newGeneratorListCommand(llboxCli),
		newGeneratorRunCommand(llboxCli),
	)
	return cmd
}

func newGeneratorListCommand(llboxCli *cmd.LlboxCli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List generators in execution order",
		Args:    cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range generator.Default().Names() {
				fmt.Fprintln(llboxCli.Out(), name)
			}
			return nil
		},
	}
}

// newGeneratorRunCommand runs one stage as a filter: the document is read
// from stdin and the augmented document written to stdout.
func newGeneratorRunCommand(llboxCli *cmd.LlboxCli) *cobra.Command {
	return &cobra.Command{
		Use:   "run NAME",
		Short: "Run a single generator, reading the document from stdin",
		Args:  cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerator(llboxCli, args[0])
		},
	}
}

func runGenerator(llboxCli cmd.Cli, name string) error {
	stage, ok := generator.Default().Stage(name)
	if !ok {
		return errdefs.InvalidParameter(errors.Errorf("unknown generator %q, see 'll-box generator list'", name))
	}
	hostOpts, err := llboxCli.HostOptions()
	if err != nil {
		return err
	}
	doc, err := readSpec(llboxCli, stdio)
	if err != nil {
		return err
	}
	out, err := stage.Apply(doc, sampleHost(hostOpts))
	if err != nil {
		return err
	}
	return writeSpec(llboxCli, stdio, out)
}
