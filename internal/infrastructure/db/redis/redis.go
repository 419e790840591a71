package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPingTimeout = 3 * time.Second
	defaultDialTimeout = 2 * time.Second
)

// Config captures the settings for the dashboard data connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

func (c Config) pingTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultPingTimeout
	}
	return c.Timeout
}

// options translates Config into client options. Dashboard reads are small
// key lookups; a short dial timeout fails startup quickly when Redis is
// misconfigured instead of hanging the boot sequence.
func (c Config) options() *redis.Options {
	return &redis.Options{
		Addr:        c.Addr,
		DB:          c.DB,
		DialTimeout: defaultDialTimeout,
	}
}

// Connect initialises the Redis client backing the dashboard provider and
// validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(cfg.options())

	pingCtx, cancel := context.WithTimeout(ctx, cfg.pingTimeout())
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
