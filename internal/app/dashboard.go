package app

import (
	"time"

	"github.com/tatamilog/tatami/internal/dailystatus"
	"github.com/tatamilog/tatami/internal/domain"
)

// DashboardRequest asks for one evaluation of the daily dashboard.
// Now pins the evaluation instant; nil means the wall clock. The instant
// is captured once and threaded through every sub-evaluation.
type DashboardRequest struct {
	Now *time.Time
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{}
}

// DashboardResponse is one day's view: the resolved status (nil means
// render nothing) plus the raw context it was derived from.
type DashboardResponse struct {
	GeneratedAt time.Time
	Status      *dailystatus.Result
	Activities  []domain.LoggedActivity
	Classes     []domain.ScheduledClass
	Goals       *domain.WeeklyGoalProgress
	Intention   string
}
