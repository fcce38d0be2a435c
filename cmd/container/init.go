package container

import (
	"os"

	"github.com/DeJeune/llbox/cli"
	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/runtime/pkg/initd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewInitCommand runs COMMAND as the supervised primary process of the
// sandbox. Everything after "init" belongs to COMMAND.
func NewInitCommand(llboxCli *cmd.LlboxCli) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "init COMMAND [ARG...]",
		Short:              "Run COMMAND as the init process of a sandbox, can't be used outside",
		Args:               cli.RequiresMinArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(llboxCli, args)
		},
	}
	return cmd
}

func runInit(llboxCli cmd.Cli, args []string) error {
	s := initd.New(args)
	// the child inherits real descriptors only, other streams fall back to
	// the process ones
	if in, ok := llboxCli.In().(*os.File); ok {
		s.Stdin = in
	}
	if out, ok := llboxCli.Out().(*os.File); ok {
		s.Stdout = out
	}
	if errOut, ok := llboxCli.Err().(*os.File); ok {
		s.Stderr = errOut
	}
	code, err := s.Run()
	if err != nil {
		logrus.WithError(err).Errorf("init %v failed", args)
		return cli.StatusError{Status: err.Error(), StatusCode: code}
	}
	if code != 0 {
		return cli.StatusError{StatusCode: code}
	}
	return nil
}
