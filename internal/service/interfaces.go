package service

import (
	"context"
	"time"

	"github.com/tatamilog/tatami/internal/contract"
	"github.com/tatamilog/tatami/internal/domain"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type ActivityService interface {
	Log(ctx context.Context, a *domain.LoggedActivity) error
	ListByDay(ctx context.Context, day time.Time) ([]domain.LoggedActivity, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	Add(ctx context.Context, c *domain.ScheduledClass) error
	ListAll(ctx context.Context) ([]domain.ScheduledClass, error)
	ListByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduledClass, error)
	// SetWeekday atomically replaces one weekday's timetable.
	SetWeekday(ctx context.Context, weekday time.Weekday, classes []domain.ScheduledClass) error
	Remove(ctx context.Context, id string) error
}

type GoalService interface {
	// ProgressForWeek snapshots the week containing now. Nil when no
	// targets are set for that week.
	ProgressForWeek(ctx context.Context, now time.Time) (*domain.WeeklyGoalProgress, error)
	// SetTargets atomically replaces the targets for the week containing now.
	SetTargets(ctx context.Context, now time.Time, targets map[domain.GoalDimension]int) error
}

type ReflectionService interface {
	SetIntention(ctx context.Context, day time.Time, text string) error
	GetByDay(ctx context.Context, day time.Time) (*domain.Reflection, error)
}
