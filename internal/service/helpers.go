package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/repository"
)

// weekStartFor returns midnight on the Monday of the week containing t,
// in t's location.
func weekStartFor(t time.Time) time.Time {
	idx := (int(t.Weekday()) + 6) % 7 // Monday = 0 .. Sunday = 6
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -idx)
}

// daysRemainingInWeek counts the full days left after t's day, through
// Sunday. Sunday itself yields 0.
func daysRemainingInWeek(t time.Time) int {
	idx := (int(t.Weekday()) + 6) % 7
	return 6 - idx
}

// buildWeekProgress snapshots the goal week containing now: stored targets
// against actuals counted from the week's logged activities. Returns nil
// when no targets exist, which reads as "no goal data" downstream.
func buildWeekProgress(ctx context.Context, goals repository.GoalRepo, activities repository.ActivityRepo, now time.Time) (*domain.WeeklyGoalProgress, error) {
	weekStart := weekStartFor(now)

	targets, err := goals.ListTargets(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("loading goal targets: %w", err)
	}
	if len(targets) == 0 {
		return nil, nil
	}

	counts, err := activities.CountByClassType(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("counting weekly activity: %w", err)
	}

	actuals := make(map[domain.GoalDimension]int, len(domain.GoalDimensions))
	for _, dim := range domain.GoalDimensions {
		actuals[dim] = 0
	}
	for classType, n := range counts {
		if dim, ok := domain.DimensionForClassType(classType); ok {
			actuals[dim] += n
		}
	}

	return &domain.WeeklyGoalProgress{
		Targets:       targets,
		Actuals:       actuals,
		DaysRemaining: daysRemainingInWeek(now),
	}, nil
}

// validateClockString accepts "H:MM" or "H:MM:SS" with in-range components.
// User-entered schedule times are validated here so the engine can treat
// them as trusted.
func validateClockString(s string) error {
	invalid := &app.ValidationError{
		Code:    app.ErrInvalidTime,
		Message: fmt.Sprintf("%q: use H:MM or H:MM:SS", s),
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return invalid
	}
	bounds := []int{23, 59, 59}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > bounds[i] {
			return invalid
		}
	}
	return nil
}
