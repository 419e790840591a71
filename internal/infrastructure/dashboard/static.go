// Package dashboard provides the read-only data sources behind the dashboard
// endpoints. The numbers are fixed placeholders until a real analytics
// pipeline exists; providers are interchangeable via ports.DashboardProvider.
package dashboard

import (
	"context"

	"github.com/authdash/dashboard-api/internal/core/domain"
)

// StaticProvider serves fixed in-process dashboard data.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func defaultStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalUsers:     150,
		ActiveUsers:    42,
		MonthlyRevenue: 12500,
		GrowthRate:     15.5,
	}
}

func defaultActivities() []domain.Activity {
	return []domain.Activity{
		{ID: 1, User: "John Doe", Action: "Logged in", Time: "2 minutes ago"},
		{ID: 2, User: "Jane Smith", Action: "Updated profile", Time: "15 minutes ago"},
		{ID: 3, User: "Bob Wilson", Action: "Created report", Time: "1 hour ago"},
	}
}

func (p *StaticProvider) Stats(_ context.Context) (domain.DashboardStats, error) {
	return defaultStats(), nil
}

func (p *StaticProvider) RecentActivities(_ context.Context) ([]domain.Activity, error) {
	return defaultActivities(), nil
}
