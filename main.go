package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DeJeune/llbox/cli"
	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/cmd/cmds"
)

func main() {
	llboxCli, err := cmd.NewLlboxCli(cmd.WithBaseContext(context.Background()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmds.RunLlbox(llboxCli); err != nil {
		if sterr, ok := err.(cli.StatusError); ok {
			if sterr.Status != "" {
				fmt.Fprintln(os.Stderr, sterr.Status)
			}

			if sterr.StatusCode == 0 {
				os.Exit(1)
			}
			os.Exit(sterr.StatusCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
