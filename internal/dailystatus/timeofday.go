package dailystatus

import (
	"strconv"
	"strings"
	"time"
)

// AtTimeOfDay anchors a wall-clock string ("H:MM" or "H:MM:SS") to the
// calendar day of ref, in ref's location, with sub-second precision zeroed.
// Seconds are optional and default to 0. Component ranges are not
// validated: schedule times are trusted input, and time.Date normalizes
// out-of-range values instead of failing.
func AtTimeOfDay(ref time.Time, clock string) time.Time {
	parts := strings.Split(clock, ":")
	var hour, minute, sec int
	if len(parts) > 0 {
		hour, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		sec, _ = strconv.Atoi(parts[2])
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, sec, 0, ref.Location())
}
