// Package cli provides the command-line interface for taskmaster.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgplazas/TaskMaster/internal/app"
	"github.com/rgplazas/TaskMaster/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskmaster.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmaster",
		Short: "Local task list manager",
		Long: `taskmaster keeps a small task list in a local JSON record.

Running without a subcommand opens the interactive TUI. The same
operations are available as subcommands for scripting.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd, c)
		},
	}

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newDoneCommand(c),
		newEditCommand(c),
		newRemoveCommand(c),
		newClearCommand(c),
		newSeedCommand(c),
		newExportCommand(c),
	)

	return root
}

// launchTUI starts the interactive view bound to the container's manager.
func launchTUI(cmd *cobra.Command, c *app.Container) error {
	model := tui.New(c.Manager, c.Config.Seed.DefaultLimit)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err := program.Run()
	return err
}
