package formatter

import (
	"fmt"
	"strings"

	"github.com/tatamilog/tatami/internal/contract"
	"github.com/tatamilog/tatami/internal/dailystatus"
	"github.com/tatamilog/tatami/internal/domain"
)

const goalBarWidth = 10

// FormatDashboard renders the full "today" view: the status banner, the
// day's logged sessions and classes, and weekly goal progress.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	if banner := FormatDailyStatus(resp.Status); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	if len(resp.Activities) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Logged today"))
		b.WriteString("\n")
		b.WriteString(formatActivityTable(resp.Activities))
	}

	if len(resp.Classes) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Today's classes"))
		b.WriteString("\n")
		b.WriteString(formatClassTable(resp.Classes))
	}

	if resp.Goals != nil {
		b.WriteString("\n")
		b.WriteString(Header("This week"))
		b.WriteString("\n")
		b.WriteString(FormatGoalProgress(resp.Goals))
	}

	out := b.String()
	if out == "" {
		return Dim("Nothing logged, nothing scheduled. Enjoy the rest day.") + "\n"
	}
	return out
}

// FormatDailyStatus renders the resolved status banner. A nil status
// renders nothing.
func FormatDailyStatus(status *dailystatus.Result) string {
	if status == nil {
		return ""
	}

	style := StatusStyle(status.Kind)
	line := style.Render(fmt.Sprintf("%s %s", StatusGlyph(status.Icon), status.Headline))
	if status.Subtext != "" {
		line += "\n" + Dim(status.Subtext)
	}
	if status.ShowActionButton {
		line += "\n" + Dim("(tatami log to record a session)")
	}
	return RenderBox("", line) + "\n"
}

func formatActivityTable(activities []domain.LoggedActivity) string {
	headers := []string{"TIME", "TYPE", "DURATION", "NOTE"}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		note := domain.CoalesceStr(a.Note, "--")
		rows = append(rows, []string{
			StyleFg.Render(a.LoggedAt.Format("15:04")),
			classTypePillValue(a.ClassType),
			StyleFg.Render(FormatMinutes(a.Minutes)),
			Dim(note),
		})
	}
	return RenderTable(headers, rows)
}

func formatClassTable(classes []domain.ScheduledClass) string {
	headers := []string{"START", "END", "CLASS", "TYPE"}
	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{
			StyleFg.Render(ClockLabel(c.StartTime)),
			StyleFg.Render(ClockLabel(c.EndTime)),
			Bold(c.ClassName),
			ClassTypePill(c.ClassType),
		})
	}
	return RenderTable(headers, rows)
}

func classTypePillValue(classType string) string {
	return ClassTypePill(&classType)
}
