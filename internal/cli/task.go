package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rgplazas/TaskMaster/internal/app"
	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initManager(cmd, c); err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if err := c.Manager.AddTask(cmd.Context(), text); err != nil {
				if errors.Is(err, domain.ErrEmptyText) {
					return fmt.Errorf("task text cannot be empty")
				}
				return err
			}

			task := c.Manager.Tasks()[0]
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s\n", shortID(task.ID), task.Text)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var filterStr string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseFilter(filterStr)
			if err != nil {
				return fmt.Errorf("%w: %q (want all, pending, or completed)", err, filterStr)
			}

			if err := initManager(cmd, c); err != nil {
				return err
			}
			c.Manager.SetFilter(filter)
			view := c.Manager.View()

			out := cmd.OutOrStdout()
			if view.TotalCount == 0 {
				fmt.Fprintln(out, "No tasks. Add one with 'taskmaster add'.")
				return nil
			}

			w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\tID\tTASK\tCREATED")
			for _, task := range view.Visible {
				mark := "[ ]"
				if task.Completed {
					mark = "[x]"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					mark, shortID(task.ID), task.Text, task.Created.Local().Format(time.DateOnly))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%d pending / %d total (filter: %s)\n",
				view.PendingCount, view.TotalCount, filter)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterStr, "filter", "f", "all", "Filter tasks: all, pending, completed")
	return cmd
}

// newDoneCommand creates the done command, which toggles completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initManager(cmd, c); err != nil {
				return err
			}

			id, err := resolveID(c.Manager.Tasks(), args[0])
			if err != nil {
				return err
			}
			if err := c.Manager.ToggleTask(cmd.Context(), id); err != nil {
				return err
			}

			tasks := c.Manager.Tasks()
			idx := domain.IndexByID(tasks, id)
			if idx < 0 {
				return fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
			}
			state := "pending"
			if tasks[idx].Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", shortID(id), state)
			return nil
		},
	}
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>...",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initManager(cmd, c); err != nil {
				return err
			}

			id, err := resolveID(c.Manager.Tasks(), args[0])
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if err := c.Manager.UpdateText(cmd.Context(), id, text); err != nil {
				if errors.Is(err, domain.ErrEmptyText) {
					return fmt.Errorf("task text cannot be empty")
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", shortID(id))
			return nil
		},
	}
}

// newRemoveCommand creates the rm command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initManager(cmd, c); err != nil {
				return err
			}

			id, err := resolveID(c.Manager.Tasks(), args[0])
			if err != nil {
				return err
			}
			if err := c.Manager.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", shortID(id))
			return nil
		},
	}
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove completed tasks (or everything with --all)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := initManager(cmd, c); err != nil {
				return err
			}

			before := c.Manager.View().TotalCount
			if all {
				if err := c.Manager.ClearAll(cmd.Context()); err != nil {
					return err
				}
			} else {
				if err := c.Manager.ClearCompleted(cmd.Context()); err != nil {
					return err
				}
			}

			removed := before - c.Manager.View().TotalCount
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d task(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every task, not just completed ones")
	return cmd
}
