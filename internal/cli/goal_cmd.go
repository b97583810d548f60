package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/cli/formatter"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/repository"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage daily goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalDeleteCmd(app),
		newGoalToggleCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a goal to the tracker",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Goals.Add(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s [%s]\n", g.Title, g.ID)
			return nil
		},
	}
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals found.")
				return nil
			}
			records, err := app.Goals.Records(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(goals, records))
			return nil
		},
	}
}

func newGoalDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a goal and all of its check-ins",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			goal, err := findGoal(cmd, app, id)
			if err != nil {
				return err
			}

			pending := domain.DeleteConfirmation{}.Request(goal.ID)
			accepted := yes
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("deleting goal %q needs confirmation: pass --yes", goal.Title)
				}
				accepted, err = app.confirm(fmt.Sprintf("Delete goal %q and all its records?", goal.Title))
				if err != nil {
					return err
				}
			}

			target, _ := pending.Pending()
			if !accepted {
				pending = pending.Dismiss()
			}
			if _, confirmed := pending.Confirm(target); !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			removed, err := app.Goals.Delete(cmd.Context(), goal.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s (%d records removed)\n", goal.Title, removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newGoalToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID [DATE]",
		Short: "Check a goal off for a day, or undo it (default today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := findGoal(cmd, app, args[0])
			if err != nil {
				return err
			}
			date := calendar.FormatDateKey(app.now())
			if len(args) == 2 {
				date = domain.DateKey(args[1])
			}

			done, err := app.Goals.Toggle(cmd.Context(), goal.ID, date)
			if err != nil {
				return err
			}
			mark := "✘"
			if done {
				mark = "✔"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n", mark, goal.Title, date)
			return nil
		},
	}
}

func newTrackerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tracker",
		Short: "Show the season goal tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := app.Season.Days(app.now())
			if err != nil {
				return err
			}
			goals, err := app.Goals.List(cmd.Context())
			if err != nil {
				return err
			}
			records, err := app.Goals.Records(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTracker(days, goals, records))
			return nil
		},
	}
}

// findGoal resolves a goal by exact id, then by unique id prefix.
func findGoal(cmd *cobra.Command, app *App, input string) (*domain.Goal, error) {
	goals, err := app.Goals.List(cmd.Context())
	if err != nil {
		return nil, err
	}
	var matches []domain.Goal
	for _, g := range goals {
		if g.ID == input {
			return &g, nil
		}
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("goal %q: %w", input, repository.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("goal id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
