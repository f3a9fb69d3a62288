package formatter

import (
	"fmt"
	"strings"

	"github.com/tatamilog/tatami/internal/domain"
)

// FormatGoalProgress renders one bar per targeted dimension, in the
// canonical dimension order, plus the days-remaining line.
func FormatGoalProgress(progress *domain.WeeklyGoalProgress) string {
	if progress == nil {
		return Dim("No goals set this week. Set them with: tatami goals set") + "\n"
	}

	var b strings.Builder
	for _, dim := range domain.GoalDimensions {
		target, ok := progress.Target(dim)
		if !ok {
			continue
		}
		actual, _ := progress.Actual(dim)
		label := fmt.Sprintf("%-10s", domain.DimensionLabel(dim))
		b.WriteString(fmt.Sprintf("%s %s\n", StyleFg.Render(label), RenderGoalBar(actual, target, goalBarWidth)))
	}

	days := progress.DaysRemaining
	switch days {
	case 0:
		b.WriteString(Dim("Last day of the week.") + "\n")
	case 1:
		b.WriteString(Dim("1 day left this week.") + "\n")
	default:
		b.WriteString(Dim(fmt.Sprintf("%d days left this week.", days)) + "\n")
	}
	return b.String()
}
