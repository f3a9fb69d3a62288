package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/dailystatus"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/repository"
)

type dashboardService struct {
	activities  repository.ActivityRepo
	schedule    repository.ScheduleRepo
	goals       repository.GoalRepo
	reflections repository.ReflectionRepo
}

func NewDashboardService(
	activities repository.ActivityRepo,
	schedule repository.ScheduleRepo,
	goals repository.GoalRepo,
	reflections repository.ReflectionRepo,
) DashboardService {
	return &dashboardService{
		activities:  activities,
		schedule:    schedule,
		goals:       goals,
		reflections: reflections,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	// Capture the instant exactly once; every evaluation below must see
	// the same value or a class could flip state mid-resolve.
	now := domain.TimeFromPtrWithDefault(time.Now(), req.Now)

	activities, err := s.activities.ListByDay(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("loading today's activities: %w", err)
	}

	classes, err := s.schedule.ListByWeekday(ctx, now.Weekday())
	if err != nil {
		return nil, fmt.Errorf("loading today's schedule: %w", err)
	}

	progress, err := buildWeekProgress(ctx, s.goals, s.activities, now)
	if err != nil {
		return nil, err
	}

	var intention string
	ref, err := s.reflections.GetByDay(ctx, now.AddDate(0, 0, -1))
	switch {
	case err == nil:
		intention = ref.Intention
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("loading yesterday's reflection: %w", err)
	}

	status := dailystatus.Resolve(dailystatus.Input{
		Now:        now,
		Intention:  intention,
		Activities: activities,
		Classes:    classes,
		Goals:      progress,
	})

	return &app.DashboardResponse{
		GeneratedAt: now,
		Status:      status,
		Activities:  activities,
		Classes:     classes,
		Goals:       progress,
		Intention:   intention,
	}, nil
}
