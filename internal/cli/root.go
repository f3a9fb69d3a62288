package cli

import (
	"github.com/spf13/cobra"

	"github.com/tatamilog/tatami/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dashboard   service.DashboardService
	Activities  service.ActivityService
	Schedule    service.ScheduleService
	Goals       service.GoalService
	Reflections service.ReflectionService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tatami" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tatami",
		Short: "Training log for BJJ and strength work",
	}

	root.AddCommand(
		newTodayCmd(app),
		newLogCmd(app),
		newScheduleCmd(app),
		newGoalsCmd(app),
		newReflectCmd(app),
	)

	return root
}
