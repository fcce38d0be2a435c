package container

import (
	"path/filepath"

	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/runtime/config"
	"github.com/opencontainers/runtime-tools/generate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type specOptions struct {
	bundle     string
	appID      string
	appDir     string
	runtimeDir string
	baseDir    string
	onlyApp    bool
}

// NewSpecCommand writes a base spec document of the kind the package
// manager hands to "ll-box generate".
func NewSpecCommand(llboxCli *cmd.LlboxCli) *cobra.Command {
	var opts specOptions

	cmd := &cobra.Command{
		Use:   "spec [OPTIONS] [COMMAND] [ARG...]",
		Short: "Create a base spec document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpec(llboxCli, &opts, args)
		},
	}
	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.bundle, "bundle", "b", "", "Write config.json into DIR instead of stdout")
	flags.StringVar(&opts.appID, "app-id", "", "Application id annotation")
	flags.StringVar(&opts.appDir, "app-dir", "", "Application directory annotation")
	flags.StringVar(&opts.runtimeDir, "runtime-dir", "", "Runtime directory annotation")
	flags.StringVar(&opts.baseDir, "base-dir", "", "Base directory annotation")
	flags.BoolVar(&opts.onlyApp, "only-app", false, "Ask for a minimal, non desktop sandbox")
	return cmd
}

func runSpec(llboxCli cmd.Cli, opts *specOptions, args []string) error {
	gp, err := generate.New("linux")
	if err != nil {
		return errors.Wrap(err, "generate default linux spec")
	}
	g := &gp

	// mounts, capabilities and namespaces are the generators' business
	g.Config.Version = config.Version
	g.Config.Mounts = nil
	g.ClearProcessCapabilities()
	if err := g.RemoveLinuxNamespace("network"); err != nil {
		return errors.Wrap(err, "share the host network")
	}
	if len(args) == 0 {
		args = []string{"/bin/bash"}
	}
	g.SetProcessArgs(args)

	annotations := map[string]string{
		config.AnnotationAppID:      opts.appID,
		config.AnnotationAppDir:     opts.appDir,
		config.AnnotationRuntimeDir: opts.runtimeDir,
		config.AnnotationBaseDir:    opts.baseDir,
	}
	if opts.onlyApp {
		annotations[config.AnnotationOnlyApp] = "true"
	}
	for k, v := range annotations {
		if v == "" {
			continue
		}
		if g.Config.Annotations == nil {
			g.Config.Annotations = map[string]string{}
		}
		g.Config.Annotations[k] = v
	}

	output := stdio
	if opts.bundle != "" {
		output = filepath.Join(opts.bundle, "config.json")
	}
	return writeSpec(llboxCli, output, g.Config)
}
