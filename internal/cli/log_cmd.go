package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tatamilog/tatami/internal/cli/formatter"
	"github.com/tatamilog/tatami/internal/dailystatus"
	"github.com/tatamilog/tatami/internal/domain"
)

// classTypeOrder fixes the menu order for interactive selection.
var classTypeOrder = []string{
	"bjj", "nogi", "open_mat", "judo", "wrestling",
	"sc", "conditioning", "mobility", "yoga",
}

func newLogCmd(app *App) *cobra.Command {
	var classTypeFlag string
	var minutes int
	var note string
	var at string

	cmd := &cobra.Command{
		Use:   "log [class-type]",
		Short: "Log a training session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classType := classTypeFlag
			if len(args) > 0 {
				classType = args[0]
			}

			if classType == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("class type required; try: tatami log bjj")
				}
				var err error
				classType, minutes, note, err = runLogForm(minutes, note)
				if err != nil {
					return err
				}
			}

			if err := validateOptionalClock(at); err != nil {
				return fmt.Errorf("--at %v", err)
			}

			a := &domain.LoggedActivity{
				ClassType: classType,
				Minutes:   minutes,
				Note:      note,
			}
			if at != "" {
				a.LoggedAt = dailystatus.AtTimeOfDay(time.Now(), at)
			}

			if err := app.Activities.Log(context.Background(), a); err != nil {
				return err
			}

			fmt.Printf("%s %s logged (%s)\n",
				formatter.StyleGreen.Render("✔"),
				domain.ClassTypeLabel(classType),
				formatter.FormatMinutes(a.Minutes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&classTypeFlag, "type", "t", "", "Class type (e.g. bjj, sc, mobility)")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 60, "Session duration in minutes")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	cmd.Flags().StringVar(&at, "at", "", "Time of day the session started (H:MM, defaults to now)")

	return cmd
}

func runLogForm(defaultMinutes int, defaultNote string) (classType string, minutes int, note string, err error) {
	options := make([]huh.Option[string], 0, len(classTypeOrder))
	for _, ct := range classTypeOrder {
		options = append(options, huh.NewOption(domain.ClassTypeLabel(ct), ct))
	}

	minutesStr := strconv.Itoa(defaultMinutes)
	note = defaultNote

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What did you train?").
				Options(options...).
				Value(&classType),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(&minutesStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Note (optional)").
				Value(&note),
		),
	).WithTheme(tatamiHuhTheme()).WithShowHelp(false)

	if err = form.Run(); err != nil {
		return "", 0, "", err
	}

	minutes = defaultMinutes
	if v, convErr := strconv.Atoi(minutesStr); convErr == nil && v > 0 {
		minutes = v
	}
	return classType, minutes, note, nil
}
