package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/cli/formatter"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/series"
	"github.com/alexanderramin/planner/internal/service"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"ev"},
		Short:   "Manage calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventShowCmd(app),
		newEventEditCmd(app),
		newEventDeleteCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var in eventInput
	var interval int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event, optionally repeating until an end date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || (in.Title == "" && app.interactive()) {
				if in.Date == "" {
					in.Date = string(calendar.FormatDateKey(app.now()))
				}
				if in.Interval == "" {
					in.Interval = strconv.Itoa(app.DefaultInterval)
				}
				if err := eventForm(&in).Run(); err != nil {
					return err
				}
				if in.Interval != "" {
					v, err := strconv.Atoi(in.Interval)
					if err != nil {
						return fmt.Errorf("invalid interval %q: %w", in.Interval, err)
					}
					interval = v
				}
			}

			if in.Date == "" {
				return fmt.Errorf("--date is required")
			}
			if !cmd.Flags().Changed("interval") && in.Interval == "" {
				interval = app.DefaultInterval
			}
			until := in.Until
			if until == "" {
				until = in.Date
			}

			res, err := app.Events.Create(cmd.Context(), service.CreateEventRequest{
				Title:        in.Title,
				Time:         in.Time,
				Type:         domain.EventType(in.Type),
				Date:         domain.DateKey(in.Date),
				Repeat:       domain.RepeatMode(in.Repeat),
				Until:        domain.DateKey(until),
				IntervalDays: interval,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch n := len(res.Events); {
			case n == 0:
				fmt.Fprintln(out, "Nothing created: the end date is before the start date.")
			case n == 1:
				fmt.Fprintf(out, "Created %s on %s [%s]\n", res.Events[0].Title, res.Events[0].Date, res.Events[0].ID)
			default:
				fmt.Fprintf(out, "Created %d events of %s, %s ~ %s\n", n, res.Events[0].Title, res.Events[0].Date, res.Events[n-1].Date)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Event title")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Time, "time", "", "Time of day (HH:MM), blank for all day")
	cmd.Flags().StringVar(&in.Type, "type", "", "Event type: study, fun, sport, travel, other")
	cmd.Flags().StringVar(&in.Repeat, "repeat", string(domain.RepeatSingle), "Repeat: single, range, daily, weekly, custom")
	cmd.Flags().StringVar(&in.Until, "until", "", "Last date a repeating event may fall on (YYYY-MM-DD)")
	cmd.Flags().IntVar(&interval, "interval", 0, "Days between occurrences for --repeat custom")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the event in a form")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally for one date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var events []domain.CalendarEvent
			var err error
			if date != "" {
				if !calendar.ValidDateKey(domain.DateKey(date)) {
					return fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
				}
				events, err = app.Events.ListByDate(cmd.Context(), domain.DateKey(date))
			} else {
				events, err = app.Events.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No events found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventList(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only events on this date (YYYY-MM-DD)")

	return cmd
}

func newEventShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one event and its series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ParseEventID(args[0])
			ev, err := app.Events.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("event %s: %w", args[0], err)
			}
			related, err := app.Events.Series(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEventDetail(*ev, related))
			return nil
		},
	}
}

func newEventEditCmd(app *App) *cobra.Command {
	var in eventInput
	var applyToSeries, interactive bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an event's title, time or type",
		Long:  "Change an event's title, time or type. Dates never change. With --series every occurrence of the event's series is rewritten.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ParseEventID(args[0])
			existing, err := app.Events.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("event %s: %w", args[0], err)
			}

			// Unset flags keep the current values.
			if !cmd.Flags().Changed("title") {
				in.Title = existing.Title
			}
			if !cmd.Flags().Changed("time") {
				in.Time = existing.Time
			}
			if !cmd.Flags().Changed("type") {
				in.Type = string(existing.Type)
			}
			if interactive {
				offerSeries, err := inSeries(cmd.Context(), app, *existing)
				if err != nil {
					return err
				}
				if err := editForm(&in, &applyToSeries, offerSeries).Run(); err != nil {
					return err
				}
			}

			res, err := app.Events.Update(cmd.Context(), service.UpdateEventRequest{
				ID:            id,
				Title:         in.Title,
				Time:          in.Time,
				Type:          domain.EventType(in.Type),
				ApplyToSeries: applyToSeries,
			})
			if err != nil {
				return err
			}

			if res.SeriesWide {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %d events in the series.\n", len(res.Events))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Updated event.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "New title")
	cmd.Flags().StringVar(&in.Time, "time", "", "New time (HH:MM), empty for all day")
	cmd.Flags().StringVar(&in.Type, "type", "", "New type")
	cmd.Flags().BoolVar(&applyToSeries, "series", false, "Apply to every occurrence in the series")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit in a form")

	return cmd
}

// inSeries reports whether ev has at least one sibling sharing its lineage.
func inSeries(ctx context.Context, app *App, ev domain.CalendarEvent) (bool, error) {
	related, err := app.Events.Series(ctx, ev.ID)
	if err != nil {
		return false, err
	}
	return series.HasSiblings(ev, related), nil
}

func newEventDeleteCmd(app *App) *cobra.Command {
	var applyToSeries bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete an event, or its whole series with --series",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Events.Delete(cmd.Context(), domain.ParseEventID(args[0]), applyToSeries)
			if err != nil {
				return fmt.Errorf("event %s: %w", args[0], err)
			}

			if res.SeriesWide {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted all %d events in the series.\n", res.Removed)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Deleted event.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyToSeries, "series", false, "Delete every occurrence in the series")

	return cmd
}
