package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/cli/formatter"
	"github.com/tatamilog/tatami/internal/contract"
)

const watchInterval = time.Minute

func newTodayCmd(a *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's training status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return runTodayWatch(a)
			}

			resp, err := a.Dashboard.GetDashboard(context.Background(), contract.NewDashboardRequest())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the dashboard open and refresh it periodically")

	return cmd
}

func runTodayWatch(a *App) error {
	p := tea.NewProgram(newTodayModel(a.Dashboard), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// todayModel depends on the dashboard use case only, not the whole App.
type todayModel struct {
	dashboard app.DashboardUseCase
	resp      *contract.DashboardResponse
	err       error
}

type dashboardLoadedMsg struct {
	resp *contract.DashboardResponse
	err  error
}

type watchTickMsg time.Time

func newTodayModel(dashboard app.DashboardUseCase) todayModel {
	return todayModel{dashboard: dashboard}
}

func (m todayModel) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.dashboard.GetDashboard(context.Background(), contract.NewDashboardRequest())
		return dashboardLoadedMsg{resp: resp, err: err}
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m todayModel) Init() tea.Cmd {
	return tea.Batch(m.loadDashboard(), watchTick())
}

func (m todayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.resp = msg.resp
		m.err = msg.err
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.loadDashboard(), watchTick())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.loadDashboard()
		}
	}
	return m, nil
}

func (m todayModel) View() string {
	var body string
	switch {
	case m.err != nil:
		body = formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err))
	case m.resp == nil:
		body = formatter.Dim("Loading...")
	default:
		body = formatter.FormatDashboard(m.resp)
		body += "\n" + formatter.Dim(fmt.Sprintf("Updated %s", m.resp.GeneratedAt.Format("15:04:05")))
	}
	return body + "\n" + formatter.Dim("r refresh · q quit") + "\n"
}
