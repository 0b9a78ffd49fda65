package cli

import (
	"fmt"

	"github.com/rgplazas/TaskMaster/internal/app"
	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/spf13/cobra"
)

// newSeedCommand creates the seed command.
func newSeedCommand(c *app.Container) *cobra.Command {
	var source string
	var limit int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all tasks with demo records from the remote source",
		Long: `Fetch sample records from the configured endpoint and replace the
whole task list with them. This is a destructive overwrite.

Two transports are available: 'fetch' performs a single request/response
round-trip, 'stream' decodes the response incrementally. Their results
are identical.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source == "" {
				source = c.Config.Seed.DefaultSource
			}
			if source != domain.SeedSourceFetch && source != domain.SeedSourceStream {
				return fmt.Errorf("%w: %q (want fetch or stream)", domain.ErrUnknownSeedSource, source)
			}
			if limit <= 0 {
				limit = c.Config.Seed.DefaultLimit
			}

			if err := initManager(cmd, c); err != nil {
				return err
			}
			if err := c.Manager.Seed(cmd.Context(), source, limit); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d task(s) via %s\n",
				c.Manager.View().TotalCount, source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Transport: fetch or stream")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of records to fetch")
	return cmd
}
