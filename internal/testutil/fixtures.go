package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/tatamilog/tatami/internal/domain"
)

// Activity options
type ActivityOption func(*domain.LoggedActivity)

func WithLoggedAt(t time.Time) ActivityOption {
	return func(a *domain.LoggedActivity) {
		a.LoggedAt = t
	}
}

func WithNote(note string) ActivityOption {
	return func(a *domain.LoggedActivity) {
		a.Note = note
	}
}

func WithMinutes(minutes int) ActivityOption {
	return func(a *domain.LoggedActivity) {
		a.Minutes = minutes
	}
}

func NewTestActivity(classType string, opts ...ActivityOption) *domain.LoggedActivity {
	now := time.Now().UTC()
	a := &domain.LoggedActivity{
		ID:        uuid.New().String(),
		ClassType: classType,
		Minutes:   60,
		LoggedAt:  now,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Class options
type ClassOption func(*domain.ScheduledClass)

func WithClassType(classType string) ClassOption {
	return func(c *domain.ScheduledClass) {
		c.ClassType = &classType
	}
}

func WithWildcardType() ClassOption {
	return func(c *domain.ScheduledClass) {
		c.ClassType = nil
	}
}

func WithWeekday(weekday time.Weekday) ClassOption {
	return func(c *domain.ScheduledClass) {
		c.Weekday = weekday
	}
}

func NewTestClass(name, start, end string, opts ...ClassOption) *domain.ScheduledClass {
	bjj := "bjj"
	c := &domain.ScheduledClass{
		ID:        uuid.New().String(),
		Weekday:   time.Monday,
		ClassName: name,
		ClassType: &bjj,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestReflection(day time.Time, intention string) *domain.Reflection {
	return &domain.Reflection{
		ID:        uuid.New().String(),
		Day:       day,
		Intention: intention,
		CreatedAt: time.Now().UTC(),
	}
}
