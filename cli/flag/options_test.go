package flag

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gotest.tools/v3/assert"
)

func TestSetLogLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	assert.NilError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.GetLevel(), logrus.DebugLevel)

	assert.NilError(t, SetLogLevel(""))
	assert.Equal(t, logrus.GetLevel(), logrus.InfoLevel)

	assert.ErrorContains(t, SetLogLevel("loud"), "loud")
}

func TestInstallFlags(t *testing.T) {
	opts := NewClientOptions()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.InstallFlags(flags)

	assert.NilError(t, flags.Parse([]string{"-D", "--log-level", "warn", "--config", "/tmp/ll"}))
	assert.Equal(t, opts.Debug, true)
	assert.Equal(t, opts.LogLevel, "warn")
	assert.Equal(t, opts.ConfigDir, "/tmp/ll")
}
