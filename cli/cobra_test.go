package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "ll-box [OPTIONS] COMMAND [ARG...]", Short: "root"}
	SetupRootCommand(root)
	group := &cobra.Command{Use: "generator", Short: "group"}
	group.AddCommand(&cobra.Command{Use: "list", Short: "list", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(
		group,
		&cobra.Command{Use: "init", Short: "init short", Run: func(*cobra.Command, []string) {}},
		&cobra.Command{Use: "hidden", Hidden: true, Run: func(*cobra.Command, []string) {}},
	)
	return root
}

func TestRootUsage(t *testing.T) {
	root := newTestRoot()
	usage := root.UsageString()

	assert.Check(t, is.Contains(usage, "Commands:\n  init "))
	assert.Check(t, is.Contains(usage, "Generators, in the order \"generate\" runs them:\n  00-id-mapping\n"))
	assert.Check(t, is.Contains(usage, "  90-legacy"))
	assert.Check(t, is.Contains(usage, "Global Options:"))
	assert.Check(t, !contains(usage, "hidden"))

	cmds := availableCommands(root)
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name())
	}
	// the generator group goes after the plain commands
	assert.Check(t, is.DeepEqual(names, []string{"init", "generator"}))
}

func TestSubcommandUsage(t *testing.T) {
	root := newTestRoot()
	sub, _, err := root.Find([]string{"generator"})
	assert.NilError(t, err)
	usage := sub.UsageString()
	assert.Check(t, is.Contains(usage, "Commands:\n  list "))
	assert.Check(t, !contains(usage, "Generators, in the order"))
}

func TestArgsValidators(t *testing.T) {
	cmd := &cobra.Command{Use: "run NAME", Short: "Run a single generator"}
	assert.NilError(t, ExactArgs(1)(cmd, []string{"a"}))
	assert.ErrorContains(t, ExactArgs(1)(cmd, nil), `"run" requires exactly 1 argument.`)
	assert.NilError(t, RequiresMinArgs(1)(cmd, []string{"a", "b"}))
	assert.ErrorContains(t, RequiresMinArgs(2)(cmd, nil), "requires at least 2 arguments")
	assert.NilError(t, NoArgs(cmd, nil))
	assert.ErrorContains(t, NoArgs(cmd, []string{"x"}), "accepts no arguments")
}

func contains(s, sub string) bool {
	return is.Contains(s, sub)().Success()
}
