package flag

import (
	"github.com/DeJeune/llbox/cli/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type ClientOptions struct {
	Debug     bool
	LogLevel  string
	ConfigDir string
}

func NewClientOptions() *ClientOptions {
	return &ClientOptions{}
}

// InstallFlags 添加全局flag
func (o *ClientOptions) InstallFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.ConfigDir, "config", config.Dir(), "Location of client config files")
	flags.BoolVarP(&o.Debug, "debug", "D", false, "Enable debug mode")
	flags.StringVarP(&o.LogLevel, "log-level", "l", "", `Set the logging level ("debug", "info", "warn", "error", "fatal") (default "info")`)
}

// SetLogLevel 设置日志等级, 空字符串表示 info
func SetLogLevel(logLevel string) error {
	if logLevel == "" {
		logrus.SetLevel(logrus.InfoLevel)
		return nil
	}
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Errorf("unable to parse logging level: %s", logLevel)
	}
	logrus.SetLevel(lvl)
	return nil
}
