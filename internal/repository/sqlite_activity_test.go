package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatamilog/tatami/internal/testutil"
)

func TestActivityRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("bjj", testutil.WithNote("hard rolls"), testutil.WithMinutes(90))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "bjj", got.ClassType)
	assert.Equal(t, "hard rolls", got.Note)
	assert.Equal(t, 90, got.Minutes)
	assert.True(t, got.LoggedAt.Equal(a.LoggedAt.Truncate(time.Second)))
}

func TestActivityRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_ListByDay(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	day := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	today := testutil.NewTestActivity("bjj", testutil.WithLoggedAt(day.Add(18*time.Hour)))
	lateToday := testutil.NewTestActivity("sc", testutil.WithLoggedAt(day.Add(23*time.Hour+59*time.Minute)))
	yesterday := testutil.NewTestActivity("bjj", testutil.WithLoggedAt(day.Add(-2*time.Hour)))
	tomorrow := testutil.NewTestActivity("bjj", testutil.WithLoggedAt(day.Add(25*time.Hour)))

	require.NoError(t, repo.Create(ctx, today))
	require.NoError(t, repo.Create(ctx, lateToday))
	require.NoError(t, repo.Create(ctx, yesterday))
	require.NoError(t, repo.Create(ctx, tomorrow))

	got, err := repo.ListByDay(ctx, day.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, today.ID, got[0].ID)
	assert.Equal(t, lateToday.ID, got[1].ID)
}

func TestActivityRepo_CountByClassType(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // Monday
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity("bjj", testutil.WithLoggedAt(weekStart.Add(10*time.Hour)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity("bjj", testutil.WithLoggedAt(weekStart.Add(48*time.Hour)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity("sc", testutil.WithLoggedAt(weekStart.Add(72*time.Hour)))))
	// previous week: excluded
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity("sc", testutil.WithLoggedAt(weekStart.Add(-24*time.Hour)))))

	counts, err := repo.CountByClassType(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"bjj": 2, "sc": 1}, counts)
}

func TestActivityRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("mobility")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
