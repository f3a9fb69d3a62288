package domain

import "time"

// ScheduledClass is one entry in the weekly gym timetable.
// StartTime and EndTime are local wall-clock strings ("H:MM" or "H:MM:SS")
// interpreted against whatever day the schedule is being evaluated for.
// A nil ClassType is a wildcard: any logged activity type matches it.
// An empty string is a literal type, not a wildcard.
type ScheduledClass struct {
	ID        string
	Weekday   time.Weekday
	ClassName string
	ClassType *string
	StartTime string
	EndTime   string
	CreatedAt time.Time
}

// TypeLabel returns the display label for the class type, or "" for a
// wildcard class.
func (c *ScheduledClass) TypeLabel() string {
	if c.ClassType == nil {
		return ""
	}
	return ClassTypeLabel(*c.ClassType)
}
