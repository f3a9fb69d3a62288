package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tatamilog/tatami/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.LoggedActivity) error
	GetByID(ctx context.Context, id string) (*domain.LoggedActivity, error)
	ListByDay(ctx context.Context, day time.Time) ([]domain.LoggedActivity, error)
	// CountByClassType counts activities logged in [from, to) grouped by
	// class type.
	CountByClassType(ctx context.Context, from, to time.Time) (map[string]int, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, c *domain.ScheduledClass) error
	ListByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduledClass, error)
	ListAll(ctx context.Context) ([]domain.ScheduledClass, error)
	DeleteByWeekday(ctx context.Context, weekday time.Weekday) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	ListTargets(ctx context.Context, weekStart time.Time) (map[domain.GoalDimension]int, error)
	UpsertTarget(ctx context.Context, weekStart time.Time, dim domain.GoalDimension, target int) error
	DeleteTargets(ctx context.Context, weekStart time.Time) error
}

type ReflectionRepo interface {
	Upsert(ctx context.Context, r *domain.Reflection) error
	GetByDay(ctx context.Context, day time.Time) (*domain.Reflection, error)
}
