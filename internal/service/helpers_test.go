package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/repository"
	"github.com/tatamilog/tatami/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteActivityRepo, *repository.SQLiteScheduleRepo, *repository.SQLiteGoalRepo, *repository.SQLiteReflectionRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteActivityRepo(database),
		repository.NewSQLiteScheduleRepo(database),
		repository.NewSQLiteGoalRepo(database),
		repository.NewSQLiteReflectionRepo(database),
		testutil.NewTestUoW(database)
}

func TestWeekStartFor(t *testing.T) {
	// 2025-06-04 is a Wednesday; its week starts Monday 2025-06-02
	wednesday := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), weekStartFor(wednesday))

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, weekStartFor(monday))

	sunday := time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, monday, weekStartFor(sunday))
}

func TestDaysRemainingInWeek(t *testing.T) {
	assert.Equal(t, 6, daysRemainingInWeek(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)))  // Monday
	assert.Equal(t, 4, daysRemainingInWeek(time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)))  // Wednesday
	assert.Equal(t, 0, daysRemainingInWeek(time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)))  // Sunday
}

func TestValidateClockString(t *testing.T) {
	for _, valid := range []string{"0:00", "9:05", "23:59", "18:30:45", "23:59:59"} {
		assert.NoError(t, validateClockString(valid), valid)
	}
	for _, invalid := range []string{"", "9", "24:00", "9:60", "9:05:60", "1:2:3:4", "abc", "9:xx"} {
		assert.Error(t, validateClockString(invalid), invalid)
	}
}
