package contract

import "github.com/tatamilog/tatami/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest() DashboardRequest {
	return app.NewDashboardRequest()
}

type DashboardResponse = app.DashboardResponse
