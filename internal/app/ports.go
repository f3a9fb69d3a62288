package app

import "context"

// DashboardUseCase is the narrow port the watch view depends on.
type DashboardUseCase interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}
