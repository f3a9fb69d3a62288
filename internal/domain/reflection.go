package domain

import "time"

// Reflection is an end-of-day note. Its Intention text is surfaced on
// the following day's dashboard as a carried-over prompt.
type Reflection struct {
	ID        string
	Day       time.Time
	Intention string
	CreatedAt time.Time
}
