package cmds

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DeJeune/llbox/cli"
	"github.com/DeJeune/llbox/cmd"
	"github.com/sirupsen/logrus"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/env"
	"gotest.tools/v3/fs"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := fs.NewDir(t, "llbox-config")
	defer dir.Remove()
	defer env.Patch(t, "LINGLONG_CONFIG", dir.Path())()
	defer logrus.SetOutput(logrus.StandardLogger().Out)

	var out bytes.Buffer
	llboxCli, err := cmd.NewLlboxCli(
		cmd.WithInputStream(strings.NewReader("")),
		cmd.WithCombinedStreams(&out),
	)
	assert.NilError(t, err)
	tcmd := NewLlboxCommand(llboxCli)
	tcmd.SetArgs(append([]string{"--config", dir.Path()}, args...))
	err = runCommand(llboxCli.BaseContext(), tcmd)
	return out.String(), err
}

func TestGeneratorListCommand(t *testing.T) {
	out, err := run(t, "generator", "list")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "00-id-mapping\n05-initialize\n"))
}

func TestUnknownGenerator(t *testing.T) {
	_, err := run(t, "generator", "run", "nope")
	sterr, ok := err.(cli.StatusError)
	assert.Assert(t, ok)
	assert.Equal(t, sterr.StatusCode, cli.ExitInvalid)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "generator", "list")
	assert.ErrorContains(t, err, "loud")
}

func TestBadFlag(t *testing.T) {
	_, err := run(t, "--no-such-flag", "generator", "list")
	sterr, ok := err.(cli.StatusError)
	assert.Assert(t, ok)
	assert.Equal(t, sterr.StatusCode, cli.ExitInvalid)
}

func TestInitPassesFlagsThrough(t *testing.T) {
	_, err := run(t, "init", "sh", "-c", "exit 5")
	sterr, ok := err.(cli.StatusError)
	assert.Assert(t, ok)
	assert.Equal(t, sterr.StatusCode, 5)
}
