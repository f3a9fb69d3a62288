package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
}

func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) Log(ctx context.Context, a *domain.LoggedActivity) error {
	if !domain.ValidClassTypes[a.ClassType] {
		return &app.ValidationError{
			Code:    app.ErrInvalidClassType,
			Message: fmt.Sprintf("unknown class type %q", a.ClassType),
		}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.LoggedAt.IsZero() {
		a.LoggedAt = time.Now()
	}
	a.CreatedAt = time.Now().UTC()
	return s.activities.Create(ctx, a)
}

func (s *activityService) ListByDay(ctx context.Context, day time.Time) ([]domain.LoggedActivity, error) {
	return s.activities.ListByDay(ctx, day)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}
