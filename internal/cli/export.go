package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rgplazas/TaskMaster/internal/app"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list to stdout or a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := initManager(cmd, c); err != nil {
				return err
			}
			tasks := c.Manager.Tasks()

			var content []byte
			var err error
			switch format {
			case "json":
				content, err = json.MarshalIndent(tasks, "", "  ")
				content = append(content, '\n')
			case "yaml", "yml":
				content, err = yaml.Marshal(tasks)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode tasks: %w", err)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}
			if err := os.WriteFile(outPath, content, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", len(tasks), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default stdout)")
	return cmd
}
