package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planner/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show season progress, today's events and goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Status.Summary(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(summary))
			return nil
		},
	}
}
