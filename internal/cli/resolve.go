package cli

import (
	"fmt"
	"strings"

	"github.com/rgplazas/TaskMaster/internal/app"
	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/spf13/cobra"
)

// initManager loads the persisted collection into the manager before a
// command runs against it.
func initManager(cmd *cobra.Command, c *app.Container) error {
	if err := c.Manager.Initialize(cmd.Context()); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	return nil
}

// resolveID maps a user-supplied id or unique id prefix onto a task id.
func resolveID(tasks []domain.Task, arg string) (string, error) {
	var match string
	for i := range tasks {
		if tasks[i].ID == arg {
			return arg, nil
		}
		if strings.HasPrefix(tasks[i].ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = tasks[i].ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrTaskNotFound, arg)
	}
	return match, nil
}

// shortID trims a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
