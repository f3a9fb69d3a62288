package dailystatus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatamilog/tatami/internal/domain"
)

func strptr(s string) *string { return &s }

func classAt(name, start, end string, classType *string) domain.ScheduledClass {
	return domain.ScheduledClass{
		ID:        name,
		ClassName: name,
		ClassType: classType,
		StartTime: start,
		EndTime:   end,
	}
}

func TestEffectivelyEnded_InsideGrace(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
	c := classAt("BJJ Fundamentals", "10:30", "11:25", strptr("bjj"))
	// end 11:25, grace-adjusted 10:55 <= now
	assert.True(t, EffectivelyEnded(&c, now))
}

func TestEffectivelyEnded_BeforeGrace(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
	c := classAt("BJJ Fundamentals", "11:00", "12:00", strptr("bjj"))
	// grace-adjusted end 11:30 is still ahead
	assert.False(t, EffectivelyEnded(&c, now))
}

func TestEffectivelyEnded_ExactGraceBoundary(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 30, 0, 0, time.UTC)
	c := classAt("BJJ Fundamentals", "11:00", "12:00", strptr("bjj"))
	// now == end - 30m counts as ended
	assert.True(t, EffectivelyEnded(&c, now))
}

func TestEndedNominally_Strict(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	ended := classAt("Morning S&C", "10:00", "12:00", strptr("sc"))
	ongoing := classAt("Lunch BJJ", "11:30", "12:00:01", strptr("bjj"))
	assert.True(t, EndedNominally(&ended, now))
	assert.False(t, EndedNominally(&ongoing, now))
}

func TestMatchesLoggedType(t *testing.T) {
	bjj := domain.LoggedActivity{ClassType: "bjj"}
	yoga := domain.LoggedActivity{ClassType: "yoga"}

	typed := classAt("BJJ", "18:00", "19:30", strptr("bjj"))
	assert.True(t, MatchesLoggedType(&typed, &bjj))
	assert.False(t, MatchesLoggedType(&typed, &yoga))

	// nil class type is a wildcard
	openMat := classAt("Open Mat", "18:00", "19:30", nil)
	assert.True(t, MatchesLoggedType(&openMat, &bjj))
	assert.True(t, MatchesLoggedType(&openMat, &yoga))

	// empty string is a literal value, not a wildcard
	untyped := classAt("Mystery", "18:00", "19:30", strptr(""))
	assert.False(t, MatchesLoggedType(&untyped, &bjj))
	assert.True(t, MatchesLoggedType(&untyped, &domain.LoggedActivity{ClassType: ""}))
}

func TestStartsWithinHorizon_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	atHorizon := classAt("Evening BJJ", "14:00", "15:30", strptr("bjj"))
	assert.True(t, StartsWithinHorizon(&atHorizon, now))

	pastHorizon := classAt("Late BJJ", "14:00:01", "15:30", strptr("bjj"))
	assert.False(t, StartsWithinHorizon(&pastHorizon, now))

	// already started, even if still running
	inProgress := classAt("Morning S&C", "9:30", "10:30", strptr("sc"))
	assert.False(t, StartsWithinHorizon(&inProgress, now))

	startingNow := classAt("On The Hour", "10:00", "11:00", strptr("sc"))
	assert.False(t, StartsWithinHorizon(&startingNow, now))
}

func TestNextUpcoming_EarliestWins(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
	classes := []domain.ScheduledClass{
		classAt("Afternoon BJJ", "14:00", "15:30", strptr("bjj")),
		classAt("Lunch S&C", "12:00", "13:00", strptr("sc")),
	}
	next := NextUpcoming(classes, now)
	require.NotNil(t, next)
	assert.Equal(t, "Lunch S&C", next.ClassName)
}

func TestNextUpcoming_TieKeepsInputOrder(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
	classes := []domain.ScheduledClass{
		classAt("First Listed", "12:00", "13:00", strptr("bjj")),
		classAt("Second Listed", "12:00", "13:30", strptr("sc")),
	}
	next := NextUpcoming(classes, now)
	require.NotNil(t, next)
	assert.Equal(t, "First Listed", next.ClassName)
}

func TestNextUpcoming_NoneInHorizon(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
	classes := []domain.ScheduledClass{
		classAt("Morning S&C", "7:00", "8:00", strptr("sc")),
		classAt("Evening BJJ", "19:00", "20:30", strptr("bjj")),
	}
	assert.Nil(t, NextUpcoming(classes, now))
}
