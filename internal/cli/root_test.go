package cli

import (
	"testing"

	"github.com/rgplazas/TaskMaster/internal/app"
	"github.com/rgplazas/TaskMaster/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_NoArgsLaunchesTUI(t *testing.T) {
	called := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *cobra.Command, _ *app.Container) error {
		called = true
		return nil
	}
	t.Cleanup(func() { launchTUIFunc = orig })

	c := newTestContainer(testutil.NewMockStore())
	_, err := execute(t, NewRootCommand(c, "test"))

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRootCommand_Version(t *testing.T) {
	c := newTestContainer(testutil.NewMockStore())

	out, err := execute(t, NewRootCommand(c, "1.2.3"), "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	c := newTestContainer(testutil.NewMockStore())
	root := NewRootCommand(c, "test")

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"add", "list", "done", "edit", "rm", "clear", "seed", "export"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
