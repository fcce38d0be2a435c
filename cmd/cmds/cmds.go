package cmds

import (
	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/cmd/container"
	"github.com/spf13/cobra"
)

func AddCommands(cmd *cobra.Command, llboxCli *cmd.LlboxCli) {
	cmd.AddCommand(
		container.NewInitCommand(llboxCli),
		container.NewGenerateCommand(llboxCli),
		container.NewGeneratorCommand(llboxCli),
		container.NewSpecCommand(llboxCli),
	)
}
