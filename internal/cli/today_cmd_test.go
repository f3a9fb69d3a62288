package cli

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatamilog/tatami/internal/contract"
	"github.com/tatamilog/tatami/internal/dailystatus"
	"github.com/tatamilog/tatami/internal/domain"
)

type stubDashboard struct {
	resp *contract.DashboardResponse
	err  error
}

func (s *stubDashboard) GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error) {
	return s.resp, s.err
}

func TestTodayModel_LoadedResponseRenders(t *testing.T) {
	stub := &stubDashboard{resp: &contract.DashboardResponse{
		Status: &dailystatus.Result{
			Kind:     domain.StatusUpcoming,
			Headline: "BJJ at 19:00",
			Icon:     domain.IconClock,
		},
	}}
	m := newTodayModel(stub)

	cmd := m.loadDashboard()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	model := updated.(todayModel)

	assert.Contains(t, model.View(), "BJJ at 19:00")
}

func TestTodayModel_ErrorShown(t *testing.T) {
	stub := &stubDashboard{err: errors.New("db locked")}
	m := newTodayModel(stub)

	updated, _ := m.Update(m.loadDashboard()())
	model := updated.(todayModel)

	assert.Contains(t, model.View(), "db locked")
}

func TestTodayModel_QuitKeys(t *testing.T) {
	m := newTodayModel(&stubDashboard{})

	for _, key := range []string{"q", "ctrl+c", "esc"} {
		_, cmd := m.Update(keyMsg(key))
		require.NotNil(t, cmd, key)
		assert.Equal(t, tea.Quit(), cmd(), key)
	}
}

func TestTodayModel_RefreshKeyReloads(t *testing.T) {
	m := newTodayModel(&stubDashboard{resp: &contract.DashboardResponse{}})

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	_, ok := cmd().(dashboardLoadedMsg)
	assert.True(t, ok)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}
