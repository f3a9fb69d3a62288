package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/repository"
)

type reflectionService struct {
	reflections repository.ReflectionRepo
}

func NewReflectionService(reflections repository.ReflectionRepo) ReflectionService {
	return &reflectionService{reflections: reflections}
}

func (s *reflectionService) SetIntention(ctx context.Context, day time.Time, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &app.ValidationError{
			Code:    app.ErrEmptyIntention,
			Message: "intention text must not be empty",
		}
	}
	return s.reflections.Upsert(ctx, &domain.Reflection{
		ID:        uuid.New().String(),
		Day:       day,
		Intention: text,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *reflectionService) GetByDay(ctx context.Context, day time.Time) (*domain.Reflection, error) {
	return s.reflections.GetByDay(ctx, day)
}
