package dailystatus

import (
	"sort"
	"time"

	"github.com/tatamilog/tatami/internal/domain"
)

const (
	// graceWindow is subtracted from a class's nominal end time before it
	// counts as ended, absorbing early finishes and logging lag.
	graceWindow = 30 * time.Minute

	// upcomingHorizon is how far ahead a class start may be and still
	// count as upcoming.
	upcomingHorizon = 4 * time.Hour
)

// EffectivelyEnded reports whether the class is done relative to now:
// now >= end - graceWindow.
func EffectivelyEnded(c *domain.ScheduledClass, now time.Time) bool {
	end := AtTimeOfDay(now, c.EndTime)
	return !now.Before(end.Add(-graceWindow))
}

// EndedNominally reports whether the class's scheduled end time is at or
// before now, with no grace applied.
func EndedNominally(c *domain.ScheduledClass, now time.Time) bool {
	return !AtTimeOfDay(now, c.EndTime).After(now)
}

// MatchesLoggedType reports whether the class covers the logged activity's
// type. A nil class type is a wildcard; anything else is an exact,
// case-sensitive match. The empty string is a literal value, not a wildcard.
func MatchesLoggedType(c *domain.ScheduledClass, a *domain.LoggedActivity) bool {
	return c.ClassType == nil || *c.ClassType == a.ClassType
}

// StartsWithinHorizon reports whether the class starts strictly after now
// and no later than now + upcomingHorizon. A class already in progress
// never counts as upcoming.
func StartsWithinHorizon(c *domain.ScheduledClass, now time.Time) bool {
	until := AtTimeOfDay(now, c.StartTime).Sub(now)
	return until > 0 && until <= upcomingHorizon
}

// NextUpcoming returns the earliest class starting within the horizon, or
// nil when none qualifies. Classes sharing a start time keep their input
// order (stable sort).
func NextUpcoming(classes []domain.ScheduledClass, now time.Time) *domain.ScheduledClass {
	var upcoming []domain.ScheduledClass
	for _, c := range classes {
		if StartsWithinHorizon(&c, now) {
			upcoming = append(upcoming, c)
		}
	}
	if len(upcoming) == 0 {
		return nil
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		si := AtTimeOfDay(now, upcoming[i].StartTime)
		sj := AtTimeOfDay(now, upcoming[j].StartTime)
		return si.Before(sj)
	})
	return &upcoming[0]
}
