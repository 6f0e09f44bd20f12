package cli

import (
	"log/slog"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Categories service.CategoryService
	Activities service.ActivityService
	Manpower   service.ManpowerService
	Import     service.ImportService
	Shifter    app.ShiftStartDateUseCase
	Calendar   *calendar.Calendar
	Logger     *slog.Logger

	// Listen is the default address for `serve`.
	Listen      string
	CORSOrigins []string

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil falls back to the huh prompt.
	Confirm func(title, description string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title, description string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title, description)
	}
	return huhConfirm(title, description)
}

// NewRootCmd creates the top-level "crewshift" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "crewshift",
		Short:         "Construction manpower scheduling with working-day start-date shifts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Parsed ahead of cobra by the entrypoint; declared here for help and
	// so cobra accepts it.
	root.PersistentFlags().String("config", "", "Config file (default ./crewshift.yaml or ~/.crewshift/crewshift.yaml)")

	root.AddCommand(
		newProjectCmd(app),
		newCategoryCmd(app),
		newActivityCmd(app),
		newManpowerCmd(app),
		newCalendarCmd(app),
		newServeCmd(app),
	)

	return root
}
