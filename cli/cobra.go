package cli

import (
	"fmt"
	"os"
	"strings"

	cliflags "github.com/DeJeune/llbox/cli/flag"
	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/runtime/pkg/generator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func SetupRootCommand(rootCmd *cobra.Command) *cliflags.ClientOptions {
	rootCmd.SetVersionTemplate("ll-box version {{.Version}}\n")
	return setupCommonRootCommand(rootCmd)
}

func setupCommonRootCommand(rootCmd *cobra.Command) *cliflags.ClientOptions {
	opts := cliflags.NewClientOptions()
	opts.InstallFlags(rootCmd.Flags())
	cobra.AddTemplateFunc("availableCommands", availableCommands)
	cobra.AddTemplateFunc("generatorNames", generatorNames)
	cobra.AddTemplateFunc("wrappedFlagUsages", wrappedFlagUsages)

	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetHelpTemplate(helpTemplate)
	rootCmd.SetFlagErrorFunc(FlagErrorFunc)
	rootCmd.SetHelpCommand(helpCommand)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	rootCmd.PersistentFlags().MarkShorthandDeprecated("help", "please use --help")
	rootCmd.PersistentFlags().Lookup("help").Hidden = true
	return opts
}

func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	usage := ""
	if cmd.HasSubCommands() {
		usage = "\n\n" + cmd.UsageString()
	}
	return StatusError{
		Status:     fmt.Sprintf("%s\nSee '%s --help'.%s", err, cmd.CommandPath(), usage),
		StatusCode: ExitInvalid,
	}
}

var helpCommand = &cobra.Command{
	Use:   "help [command]",
	Short: "help about the command",
	RunE: func(c *cobra.Command, args []string) error {
		cmd, args, e := c.Root().Find(args)
		if cmd == nil || e != nil || len(args) > 0 {
			return errors.Errorf("unknown help topic %v", strings.Join(args, " "))
		}
		helpFunc := cmd.HelpFunc()
		helpFunc(cmd, args)
		return nil
	},
}

type TopLevelCommand struct {
	cmd      *cobra.Command
	llboxCli *cmd.LlboxCli
	opts     *cliflags.ClientOptions
	flags    *pflag.FlagSet
	args     []string
}

// NewTopLevelCommand 返回一个 new TopLevelCommand 对象
func NewTopLevelCommand(cmd *cobra.Command, llboxCli *cmd.LlboxCli, opts *cliflags.ClientOptions, flags *pflag.FlagSet) *TopLevelCommand {
	return &TopLevelCommand{
		cmd:      cmd,
		llboxCli: llboxCli,
		opts:     opts,
		flags:    flags,
		args:     os.Args[1:],
	}
}

// SetArgs 通过设置参数用来调用命令
func (tcmd *TopLevelCommand) SetArgs(args []string) {
	tcmd.args = args
	tcmd.cmd.SetArgs(args)
}

// HandleGlobalFlags 解析全局flag, 遇到第一个子命令即停止, 之后的参数原样交给子命令,
// 所以 ll-box --debug init /usr/bin/app --debug 里第二个 --debug 属于 app
func (tcmd *TopLevelCommand) HandleGlobalFlags() (*cobra.Command, []string, error) {
	cmd := tcmd.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)

	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(tcmd.args); err != nil {
		if err := tcmd.Initialize(); err != nil {
			return nil, nil, err
		}
		return nil, nil, cmd.FlagErrorFunc()(cmd, err)
	}

	return cmd, flags.Args(), nil
}

// 通过解析全局option来初始化 ll-box 客户端
func (tcmd *TopLevelCommand) Initialize(ops ...cmd.CLIOption) error {
	return tcmd.llboxCli.Initialize(tcmd.opts, ops...)
}

// availableCommands 返回 help 中展示的子命令, generator 这类带子命令的放在最后
func availableCommands(cmd *cobra.Command) []*cobra.Command {
	var leaves, groups []*cobra.Command
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		if sub.HasSubCommands() {
			groups = append(groups, sub)
		} else {
			leaves = append(leaves, sub)
		}
	}
	return append(leaves, groups...)
}

func generatorNames() []string {
	return generator.Default().Names()
}

func wrappedFlagUsages(cmd *cobra.Command) string {
	return cmd.Flags().FlagUsagesWrapped(usageWidth - 1)
}

const usageWidth = 80

var usageTemplate = `Usage:
{{- if .HasAvailableSubCommands}}	{{.CommandPath}}{{if .HasAvailableFlags}} [OPTIONS]{{end}} COMMAND
{{- else}}	{{.UseLine}}{{end}}

{{if ne .Long ""}}{{.Long | trim}}{{else}}{{.Short | trim}}{{end}}
{{- if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}
{{- end}}
{{- if .HasExample}}

Examples:
{{.Example}}
{{- end}}
{{- if .HasAvailableSubCommands}}

Commands:
{{- range availableCommands .}}
  {{rpad .Name .NamePadding}} {{.Short}}
{{- end}}
{{- end}}
{{- if not .HasParent}}

Generators, in the order "generate" runs them:
{{- range generatorNames}}
  {{.}}
{{- end}}
{{- end}}
{{- if .HasAvailableFlags}}

{{if .HasParent}}Options{{else}}Global Options{{end}}:
{{wrappedFlagUsages . | trimRightSpace}}
{{- end}}
{{- if .HasAvailableSubCommands}}

Run '{{.CommandPath}} COMMAND --help' for more information on a command.
{{- end}}
`

var helpTemplate = `
{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`
