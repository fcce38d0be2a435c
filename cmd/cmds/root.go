package cmds

import (
	"context"
	"fmt"

	"github.com/DeJeune/llbox/cli"
	"github.com/DeJeune/llbox/cli/version"
	"github.com/DeJeune/llbox/cmd"
	"github.com/spf13/cobra"
)

func NewLlboxCommand(llboxCli *cmd.LlboxCli) *cli.TopLevelCommand {
	cmd := &cobra.Command{
		Use:     "ll-box [OPTIONS] COMMAND [ARG...]",
		Short:   "Prepare and supervise linglong application sandboxes",
		Version: fmt.Sprintf("%s, build %s", version.Version, version.GitCommit),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.HelpFunc()(cmd, args)
				return nil
			}
			return fmt.Errorf("ll-box: '%s' is not a ll-box command.\nSee 'll-box --help'", args[0])
		},
		TraverseChildren: true,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
	cmd.SetOut(llboxCli.Out())
	cmd.SetErr(llboxCli.Err())
	opts := cli.SetupRootCommand(cmd)
	cmd.Flags().BoolP("version", "v", false, "Print version and quit")

	setFlagErrorFunc(cmd)
	AddCommands(cmd, llboxCli)
	return cli.NewTopLevelCommand(cmd, llboxCli, opts, cmd.Flags())
}

// RunLlbox 解析全局flag, 初始化 cli 后执行子命令. 返回的错误都是 cli.StatusError
func RunLlbox(llboxCli *cmd.LlboxCli) error {
	return runCommand(llboxCli.BaseContext(), NewLlboxCommand(llboxCli))
}

func runCommand(ctx context.Context, tcmd *cli.TopLevelCommand) error {
	cmd, args, err := tcmd.HandleGlobalFlags()
	if err != nil {
		return cli.ToStatusError(err)
	}
	if err := tcmd.Initialize(); err != nil {
		return cli.ToStatusError(err)
	}
	cmd.SetArgs(args)
	return cli.ToStatusError(cmd.ExecuteContext(ctx))
}

func setFlagErrorFunc(cmd *cobra.Command) {
	flagErrorFunc := cmd.FlagErrorFunc()
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return flagErrorFunc(c, err)
	})
}
