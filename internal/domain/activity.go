package domain

import "time"

// LoggedActivity is one recorded training session for a given day.
type LoggedActivity struct {
	ID        string
	ClassType string
	Note      string
	Minutes   int
	LoggedAt  time.Time
	CreatedAt time.Time
}
