package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/repository"
)

type goalService struct {
	goals      repository.GoalRepo
	activities repository.ActivityRepo
	uow        db.UnitOfWork
}

func NewGoalService(goals repository.GoalRepo, activities repository.ActivityRepo, uow db.UnitOfWork) GoalService {
	return &goalService{goals: goals, activities: activities, uow: uow}
}

func (s *goalService) ProgressForWeek(ctx context.Context, now time.Time) (*domain.WeeklyGoalProgress, error) {
	return buildWeekProgress(ctx, s.goals, s.activities, now)
}

func (s *goalService) SetTargets(ctx context.Context, now time.Time, targets map[domain.GoalDimension]int) error {
	known := make(map[domain.GoalDimension]bool, len(domain.GoalDimensions))
	for _, dim := range domain.GoalDimensions {
		known[dim] = true
	}
	for dim, target := range targets {
		if !known[dim] {
			return &app.ValidationError{
				Code:    app.ErrInvalidTarget,
				Message: fmt.Sprintf("unknown goal dimension %q", dim),
			}
		}
		if target < 0 {
			return &app.ValidationError{
				Code:    app.ErrInvalidTarget,
				Message: fmt.Sprintf("target for %s must not be negative", dim),
			}
		}
	}

	weekStart := weekStartFor(now)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		if err := txGoals.DeleteTargets(ctx, weekStart); err != nil {
			return err
		}
		// iterate the canonical order for deterministic writes
		for _, dim := range domain.GoalDimensions {
			target, ok := targets[dim]
			if !ok {
				continue
			}
			if err := txGoals.UpsertTarget(ctx, weekStart, dim, target); err != nil {
				return err
			}
		}
		return nil
	})
}
