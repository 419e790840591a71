package ports

import (
	"context"

	"github.com/authdash/dashboard-api/internal/core/domain"
)

// DashboardProvider is a read-only source of dashboard data. Implementations
// are interchangeable behind the API layer; swapping the mocked source for a
// real one must not touch handlers or middleware.
type DashboardProvider interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	RecentActivities(ctx context.Context) ([]domain.Activity, error)
}
