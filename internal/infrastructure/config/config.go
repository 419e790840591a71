package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8000"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string        `env:"JWT_SECRET,  required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=30m"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:3000"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Dashboard DashboardConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_dashboard"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type DashboardConfig struct {
	// Source selects the dashboard data provider: "static" or "redis".
	Source string `env:"DASHBOARD_SOURCE, default=static"`
}

// Load reads configuration from environment variables using go-envconfig.
// JWT_SECRET is required: without a signing key the process must not start.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
