package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/domain"
	"github.com/tatamilog/tatami/internal/testutil"
)

func TestGoalService_SetTargetsAndProgress(t *testing.T) {
	activities, _, goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, activities, uow)
	ctx := context.Background()

	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC) // Wednesday
	require.NoError(t, svc.SetTargets(ctx, now, map[domain.GoalDimension]int{
		domain.DimBJJSessions: 3,
		domain.DimSCSessions:  2,
	}))

	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity("bjj",
		testutil.WithLoggedAt(time.Date(2025, 6, 3, 19, 0, 0, 0, time.UTC)))))

	progress, err := svc.ProgressForWeek(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, 3, progress.Targets[domain.DimBJJSessions])
	assert.Equal(t, 1, progress.Actuals[domain.DimBJJSessions])
	assert.Equal(t, 0, progress.Actuals[domain.DimSCSessions])
	assert.Equal(t, 4, progress.DaysRemaining)
}

func TestGoalService_ProgressNilWithoutTargets(t *testing.T) {
	activities, _, goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, activities, uow)

	progress, err := svc.ProgressForWeek(context.Background(), time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, progress)
}

func TestGoalService_SetTargetsReplacesWeek(t *testing.T) {
	activities, _, goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, activities, uow)
	ctx := context.Background()

	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SetTargets(ctx, now, map[domain.GoalDimension]int{
		domain.DimBJJSessions: 3,
		domain.DimSCSessions:  2,
	}))
	require.NoError(t, svc.SetTargets(ctx, now, map[domain.GoalDimension]int{
		domain.DimMobilitySessions: 1,
	}))

	progress, err := svc.ProgressForWeek(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, map[domain.GoalDimension]int{domain.DimMobilitySessions: 1}, progress.Targets)
}

func TestGoalService_SetTargetsRejectsBadInput(t *testing.T) {
	activities, _, goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, activities, uow)
	ctx := context.Background()
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	err := svc.SetTargets(ctx, now, map[domain.GoalDimension]int{"swim_sessions": 2})
	var verr *app.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, app.ErrInvalidTarget, verr.Code)

	err = svc.SetTargets(ctx, now, map[domain.GoalDimension]int{domain.DimBJJSessions: -1})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, app.ErrInvalidTarget, verr.Code)
}
