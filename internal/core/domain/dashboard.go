package domain

// DashboardStats is the aggregate snapshot shown on the dashboard landing view.
type DashboardStats struct {
	TotalUsers     int64   `json:"total_users"`
	ActiveUsers    int64   `json:"active_users"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	GrowthRate     float64 `json:"growth_rate"`
}

// Activity is a single entry in the recent-activity feed.
type Activity struct {
	ID     int64  `json:"id"`
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"`
}
