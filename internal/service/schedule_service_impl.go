package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/repository"
)

type scheduleService struct {
	schedule repository.ScheduleRepo
	uow      db.UnitOfWork
}

func NewScheduleService(schedule repository.ScheduleRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{schedule: schedule, uow: uow}
}

func validateClass(c *domain.ScheduledClass) error {
	if c.Weekday < time.Sunday || c.Weekday > time.Saturday {
		return &app.ValidationError{
			Code:    app.ErrInvalidWeekday,
			Message: fmt.Sprintf("weekday %d out of range", c.Weekday),
		}
	}
	if err := validateClockString(c.StartTime); err != nil {
		return err
	}
	if err := validateClockString(c.EndTime); err != nil {
		return err
	}
	// nil class type is the open-mat wildcard; a set one must be known
	if c.ClassType != nil && !domain.ValidClassTypes[*c.ClassType] {
		return &app.ValidationError{
			Code:    app.ErrInvalidClassType,
			Message: fmt.Sprintf("unknown class type %q", *c.ClassType),
		}
	}
	return nil
}

func (s *scheduleService) Add(ctx context.Context, c *domain.ScheduledClass) error {
	if err := validateClass(c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().UTC()
	return s.schedule.Create(ctx, c)
}

func (s *scheduleService) ListAll(ctx context.Context) ([]domain.ScheduledClass, error) {
	return s.schedule.ListAll(ctx)
}

func (s *scheduleService) ListByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduledClass, error) {
	return s.schedule.ListByWeekday(ctx, weekday)
}

func (s *scheduleService) SetWeekday(ctx context.Context, weekday time.Weekday, classes []domain.ScheduledClass) error {
	now := time.Now().UTC()
	for i := range classes {
		classes[i].Weekday = weekday
		if err := validateClass(&classes[i]); err != nil {
			return err
		}
		if classes[i].ID == "" {
			classes[i].ID = uuid.New().String()
		}
		classes[i].CreatedAt = now
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedule := repository.NewSQLiteScheduleRepo(tx)
		if err := txSchedule.DeleteByWeekday(ctx, weekday); err != nil {
			return err
		}
		for i := range classes {
			if err := txSchedule.Create(ctx, &classes[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *scheduleService) Remove(ctx context.Context, id string) error {
	return s.schedule.Delete(ctx, id)
}
