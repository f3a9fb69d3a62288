package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatamilog/tatami/internal/app"
	"github.com/tatamilog/tatami/internal/domain"
)

func TestActivityService_LogFillsDefaults(t *testing.T) {
	activities, _, _, _, _ := setupRepos(t)
	svc := NewActivityService(activities)
	ctx := context.Background()

	a := &domain.LoggedActivity{ClassType: "bjj", Minutes: 90}
	require.NoError(t, svc.Log(ctx, a))

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.LoggedAt.IsZero())

	got, err := svc.ListByDay(ctx, a.LoggedAt)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 90, got[0].Minutes)
}

func TestActivityService_LogRejectsUnknownClassType(t *testing.T) {
	activities, _, _, _, _ := setupRepos(t)
	svc := NewActivityService(activities)

	err := svc.Log(context.Background(), &domain.LoggedActivity{ClassType: "swimming"})
	require.Error(t, err)

	var verr *app.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, app.ErrInvalidClassType, verr.Code)
}

func TestActivityService_Delete(t *testing.T) {
	activities, _, _, _, _ := setupRepos(t)
	svc := NewActivityService(activities)
	ctx := context.Background()

	a := &domain.LoggedActivity{ClassType: "sc", LoggedAt: time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Log(ctx, a))
	require.NoError(t, svc.Delete(ctx, a.ID))

	got, err := svc.ListByDay(ctx, a.LoggedAt)
	require.NoError(t, err)
	assert.Empty(t, got)
}
