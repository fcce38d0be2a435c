package cmd

import (
	"context"
	"io"
	"os"

	configfile "github.com/DeJeune/llbox/cli/config/configfile"
)

// CLIOption 是传递给 LlboxCli 的函数式参数
type CLIOption func(cli *LlboxCli) error

// WithBaseContext 设置cli基本的上下文环境
func WithBaseContext(ctx context.Context) CLIOption {
	return func(cli *LlboxCli) error {
		cli.baseCtx = ctx
		return nil
	}
}

// WithStandardStreams 使用进程的标准输入输出
func WithStandardStreams() CLIOption {
	return func(cli *LlboxCli) error {
		cli.in = os.Stdin
		cli.out = os.Stdout
		cli.err = os.Stderr
		return nil
	}
}

// WithCombinedStreams uses the same writer for stdout and stderr.
func WithCombinedStreams(combined io.Writer) CLIOption {
	return func(cli *LlboxCli) error {
		cli.out = combined
		cli.err = combined
		return nil
	}
}

func WithInputStream(in io.Reader) CLIOption {
	return func(cli *LlboxCli) error {
		cli.in = in
		return nil
	}
}

func WithOutputStream(out io.Writer) CLIOption {
	return func(cli *LlboxCli) error {
		cli.out = out
		return nil
	}
}

func WithErrorStream(err io.Writer) CLIOption {
	return func(cli *LlboxCli) error {
		cli.err = err
		return nil
	}
}

// WithConfigFile uses cf instead of loading the configuration file.
func WithConfigFile(cf *configfile.ConfigFile) CLIOption {
	return func(cli *LlboxCli) error {
		cli.configFile = cf
		return nil
	}
}
