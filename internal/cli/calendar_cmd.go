package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/cli/formatter"
	"github.com/alexanderramin/planner/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the season calendar grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := calendar.BuildGrid(app.Season, app.now())
			if err != nil {
				return err
			}
			events, err := app.Events.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGrid(app.Season, cells, domain.GroupByDate(events)))
			return nil
		},
	}
}
