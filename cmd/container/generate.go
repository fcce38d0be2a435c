package container

import (
	"github.com/DeJeune/llbox/cli"
	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/runtime/pkg/generator"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// sampleHost is replaced in tests.
var sampleHost = host.Sample

type generateOptions struct {
	input  string
	output string
}

func NewGenerateCommand(llboxCli *cmd.LlboxCli) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [OPTIONS]",
		Short: "Turn a base spec document into the final sandbox configuration",
		Long: `Run every generator, in order, over the base spec document.
The first failing generator aborts the run and nothing is written.`,
		Args: cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(llboxCli, &opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", stdio, `Read the base document from FILE ("-" for stdin)`)
	flags.StringVarP(&opts.output, "output", "o", stdio, `Write the result to FILE ("-" for stdout)`)
	return cmd
}

func runGenerate(llboxCli cmd.Cli, opts *generateOptions) error {
	hostOpts, err := llboxCli.HostOptions()
	if err != nil {
		return err
	}
	doc, err := readSpec(llboxCli, opts.input)
	if err != nil {
		return err
	}

	pipeline := generator.Default()
	out, err := pipeline.Run(doc, sampleHost(hostOpts))
	if err != nil {
		return err
	}
	logrus.WithField("mounts", len(out.Mounts)).Debugf("%d generators applied", len(pipeline.Names()))
	return writeSpec(llboxCli, opts.output, out)
}
