package formatter

import (
	"strings"
	"time"

	"github.com/tatamilog/tatami/internal/domain"
)

// weekdayOrder lists days Monday-first, matching how goal weeks run.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// FormatWeekSchedule renders the full weekly timetable grouped by weekday.
func FormatWeekSchedule(classes []domain.ScheduledClass) string {
	if len(classes) == 0 {
		return Dim("No classes scheduled. Add one with: tatami schedule add") + "\n"
	}

	byDay := make(map[time.Weekday][]domain.ScheduledClass)
	for _, c := range classes {
		byDay[c.Weekday] = append(byDay[c.Weekday], c)
	}

	var b strings.Builder
	for _, day := range weekdayOrder {
		dayClasses := byDay[day]
		if len(dayClasses) == 0 {
			continue
		}
		b.WriteString(Header(day.String()))
		b.WriteString("\n")
		b.WriteString(formatClassTable(dayClasses))
		b.WriteString("\n")
	}
	return b.String()
}
