package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tatamilog/tatami/internal/cli/formatter"
	"github.com/tatamilog/tatami/internal/repository"
)

func newReflectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflect [intention]",
		Short: "Set tomorrow's training intention",
		Long: `Set an intention at the end of the day. It is carried onto tomorrow's
dashboard when nothing else is going on.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))

			if text == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("intention required; try: tatami reflect \"drill armbars\"")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("What's the intention for tomorrow?").
							Placeholder("drill armbars").
							Value(&text),
					),
				).WithTheme(tatamiHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			if err := app.Reflections.SetIntention(context.Background(), time.Now(), text); err != nil {
				return err
			}

			fmt.Printf("%s intention saved\n", formatter.StyleGreen.Render("✔"))
			return nil
		},
	}

	cmd.AddCommand(newReflectShowCmd(app))

	return cmd
}

func newReflectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's saved intention",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := app.Reflections.GetByDay(context.Background(), time.Now())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println(formatter.Dim("No intention set today."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleHeader.Render("➤"), ref.Intention)
			return nil
		},
	}
}
