package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tatamilog/tatami/internal/cli/formatter"
	"github.com/tatamilog/tatami/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the weekly class timetable",
	}

	cmd.AddCommand(
		newScheduleListCmd(app),
		newScheduleAddCmd(app),
		newScheduleSetDayCmd(app),
	)

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the full weekly timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := app.Schedule.ListAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeekSchedule(classes))
			return nil
		},
	}
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var day, name, classType, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one class to the timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := parseWeekday(day)
			if err != nil {
				return err
			}

			c := &domain.ScheduledClass{
				Weekday:   weekday,
				ClassName: name,
				StartTime: start,
				EndTime:   end,
			}
			if classType != "" {
				c.ClassType = &classType
			}

			if err := app.Schedule.Add(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("%s %s added on %s at %s\n",
				formatter.StyleGreen.Render("✔"), name, weekday, formatter.ClockLabel(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Weekday (e.g. monday)")
	cmd.Flags().StringVar(&name, "name", "", "Class name")
	cmd.Flags().StringVarP(&classType, "type", "t", "", "Class type; leave empty for an open class")
	cmd.Flags().StringVar(&start, "start", "", "Start time (H:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (H:MM)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleSetDayCmd(app *App) *cobra.Command {
	var classSpecs []string

	cmd := &cobra.Command{
		Use:   "set-day <weekday>",
		Short: "Replace one weekday's timetable",
		Long: `Replace one weekday's timetable atomically. Each --class flag adds
one class in the form "START|END|NAME[|TYPE]"; omit TYPE for an open
class. Passing no --class flags clears the day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := parseWeekday(args[0])
			if err != nil {
				return err
			}

			classes := make([]domain.ScheduledClass, 0, len(classSpecs))
			for _, spec := range classSpecs {
				c, err := parseClassSpec(spec)
				if err != nil {
					return err
				}
				classes = append(classes, c)
			}

			if err := app.Schedule.SetWeekday(context.Background(), weekday, classes); err != nil {
				return err
			}

			if len(classes) == 0 {
				fmt.Printf("%s cleared\n", weekday)
			} else {
				fmt.Printf("%s now has %d classes\n", weekday, len(classes))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&classSpecs, "class", "c", nil, `Class as "START|END|NAME[|TYPE]" (repeatable)`)

	return cmd
}

func parseClassSpec(spec string) (domain.ScheduledClass, error) {
	parts := strings.Split(spec, "|")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.ScheduledClass{}, fmt.Errorf("class %q: use START|END|NAME[|TYPE]", spec)
	}

	c := domain.ScheduledClass{
		StartTime: strings.TrimSpace(parts[0]),
		EndTime:   strings.TrimSpace(parts[1]),
		ClassName: strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		classType := strings.TrimSpace(parts[3])
		if classType != "" {
			c.ClassType = &classType
		}
	}
	return c, nil
}
