package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/authdash/dashboard-api/internal/core/domain"
)

const (
	statsKey      = "dashboard:stats"
	activitiesKey = "dashboard:activities"
)

// RedisProvider reads dashboard data from Redis:
//   - dashboard:stats       — hash of the four stat fields
//   - dashboard:activities  — list of JSON activity documents, feed order
//
// An external process can overwrite the keys at any time without the API
// layer noticing the swap.
type RedisProvider struct {
	client *redis.Client
}

func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

// Seed populates both keys with the static defaults when they are absent,
// so a fresh deployment serves the same data as the static provider.
func (p *RedisProvider) Seed(ctx context.Context) error {
	n, err := p.client.Exists(ctx, statsKey, activitiesKey).Result()
	if err != nil {
		return fmt.Errorf("dashboard seed check: %w", err)
	}
	if n > 0 {
		return nil
	}

	stats := defaultStats()
	if err := p.client.HSet(ctx, statsKey, map[string]any{
		"total_users":     stats.TotalUsers,
		"active_users":    stats.ActiveUsers,
		"monthly_revenue": stats.MonthlyRevenue,
		"growth_rate":     stats.GrowthRate,
	}).Err(); err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	for _, a := range defaultActivities() {
		doc, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}
		if err := p.client.RPush(ctx, activitiesKey, doc).Err(); err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}
	}

	return nil
}

func (p *RedisProvider) Stats(ctx context.Context) (domain.DashboardStats, error) {
	fields, err := p.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("read stats: %w", err)
	}

	var stats domain.DashboardStats
	stats.TotalUsers, _ = strconv.ParseInt(fields["total_users"], 10, 64)
	stats.ActiveUsers, _ = strconv.ParseInt(fields["active_users"], 10, 64)
	stats.MonthlyRevenue, _ = strconv.ParseFloat(fields["monthly_revenue"], 64)
	stats.GrowthRate, _ = strconv.ParseFloat(fields["growth_rate"], 64)
	return stats, nil
}

func (p *RedisProvider) RecentActivities(ctx context.Context) ([]domain.Activity, error) {
	docs, err := p.client.LRange(ctx, activitiesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(docs))
	for _, doc := range docs {
		var a domain.Activity
		if err := json.Unmarshal([]byte(doc), &a); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}
