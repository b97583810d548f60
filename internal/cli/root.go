package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/service"
)

// App holds the services and settings the CLI commands run against.
type App struct {
	Events   service.EventService
	Goals    service.GoalService
	Transfer service.TransferService
	Status   service.StatusService

	Season          calendar.Season
	DefaultInterval int

	// Now defaults to time.Now.
	Now func() time.Time
	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Defaults to a huh confirm form.
	Confirm func(title string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	var ok bool
	if err := confirmForm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// NewRootCmd creates the top-level "planner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Season calendar, repeating events and daily goal tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEventCmd(app),
		newCalendarCmd(app),
		newGoalCmd(app),
		newTrackerCmd(app),
		newStatusCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
