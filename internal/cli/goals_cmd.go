package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tatamilog/tatami/internal/cli/formatter"
	"github.com/tatamilog/tatami/internal/domain"
)

func newGoalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage weekly session goals",
	}

	cmd.AddCommand(
		newGoalsShowCmd(app),
		newGoalsSetCmd(app),
	)

	return cmd
}

func newGoalsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show this week's goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, err := app.Goals.ProgressForWeek(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGoalProgress(progress))
			return nil
		},
	}
}

func newGoalsSetCmd(app *App) *cobra.Command {
	var bjj, sc, mobility int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set this week's session targets",
		Long: `Set this week's session targets. Only the dimensions you pass get a
target; the rest are left without one. Running set again replaces the
whole week.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make(map[domain.GoalDimension]int)
			if cmd.Flags().Changed("bjj") {
				targets[domain.DimBJJSessions] = bjj
			}
			if cmd.Flags().Changed("sc") {
				targets[domain.DimSCSessions] = sc
			}
			if cmd.Flags().Changed("mobility") {
				targets[domain.DimMobilitySessions] = mobility
			}
			if len(targets) == 0 {
				return fmt.Errorf("pass at least one of --bjj, --sc, --mobility")
			}

			if err := app.Goals.SetTargets(context.Background(), time.Now(), targets); err != nil {
				return err
			}

			fmt.Printf("%s weekly targets updated\n", formatter.StyleGreen.Render("✔"))
			return nil
		},
	}

	cmd.Flags().IntVar(&bjj, "bjj", 0, "Target BJJ sessions this week")
	cmd.Flags().IntVar(&sc, "sc", 0, "Target S&C sessions this week")
	cmd.Flags().IntVar(&mobility, "mobility", 0, "Target mobility sessions this week")

	return cmd
}
