package cmd

import (
	"context"
	"io"

	"github.com/DeJeune/llbox/cli/config"
	configfile "github.com/DeJeune/llbox/cli/config/configfile"
	cliflags "github.com/DeJeune/llbox/cli/flag"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/sirupsen/logrus"
)

type Streams interface {
	In() io.Reader
	Out() io.Writer
	Err() io.Writer
}

// Cli is what every ll-box command gets to work with.
type Cli interface {
	Streams
	ConfigFile() *configfile.ConfigFile
	HostOptions() (host.Options, error)
	Apply(ops ...CLIOption) error
}

type LlboxCli struct {
	configFile *configfile.ConfigFile
	in         io.Reader
	out        io.Writer
	err        io.Writer
	options    *cliflags.ClientOptions
	baseCtx    context.Context
}

func (cli *LlboxCli) ConfigFile() *configfile.ConfigFile {
	if cli.configFile == nil {
		cli.configFile = config.LoadDefaultConfigFile(cli.err)
	}
	return cli.configFile
}

// HostOptions returns the generator tunables from the config file.
func (cli *LlboxCli) HostOptions() (host.Options, error) {
	return cli.ConfigFile().HostOptions()
}

// Out returns the writer used for stdout
func (cli *LlboxCli) Out() io.Writer {
	return cli.out
}

func (cli *LlboxCli) Err() io.Writer {
	return cli.err
}

func (cli *LlboxCli) In() io.Reader {
	return cli.in
}

// BaseContext is the context every command is executed with.
func (cli *LlboxCli) BaseContext() context.Context {
	return cli.baseCtx
}

// Initialize 根据全局 option 初始化 cli: 配置目录, 配置文件和日志等级
func (cli *LlboxCli) Initialize(opts *cliflags.ClientOptions, ops ...CLIOption) error {
	if err := cli.Apply(ops...); err != nil {
		return err
	}
	logrus.SetOutput(cli.err)

	if opts.ConfigDir != "" {
		config.SetDir(opts.ConfigDir)
	}
	cli.options = opts
	cli.configFile = config.LoadDefaultConfigFile(cli.err)

	level := opts.LogLevel
	if level == "" {
		level = cli.configFile.LogLevel
	}
	if opts.Debug {
		level = logrus.DebugLevel.String()
	}
	return cliflags.SetLogLevel(level)
}

func (cli *LlboxCli) Apply(ops ...CLIOption) error {
	for _, op := range ops {
		if err := op(cli); err != nil {
			return err
		}
	}
	return nil
}

func NewLlboxCli(ops ...CLIOption) (*LlboxCli, error) {
	defaultOps := []CLIOption{
		WithStandardStreams(),
	}
	ops = append(defaultOps, ops...)
	cli := &LlboxCli{baseCtx: context.Background()}
	if err := cli.Apply(ops...); err != nil {
		return nil, err
	}
	return cli, nil
}
