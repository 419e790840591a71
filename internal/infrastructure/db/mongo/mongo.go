package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultConnectTimeout = 5 * time.Second
	// The credential store serves one small collection per request; a modest
	// pool cap keeps a misbehaving client from exhausting server connections.
	defaultMaxPoolSize = 32
)

// Config captures the settings for the credential store connection.
type Config struct {
	URI         string
	Database    string
	Timeout     time.Duration
	MaxPoolSize uint64
}

func (c Config) connectTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultConnectTimeout
	}
	return c.Timeout
}

// clientOptions translates Config into driver options, filling in defaults
// for anything unset.
func (c Config) clientOptions() *options.ClientOptions {
	maxPool := c.MaxPoolSize
	if maxPool == 0 {
		maxPool = defaultMaxPoolSize
	}

	return options.Client().
		ApplyURI(c.URI).
		SetMaxPoolSize(maxPool).
		SetServerSelectionTimeout(c.connectTimeout())
}

// Connect establishes the MongoDB client backing the credential store,
// verifies connectivity with a ping, and returns both the client and the
// selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.connectTimeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, cfg.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
