package mongo

import (
	"testing"
	"time"
)

func TestConfig_ClientOptionsDefaults(t *testing.T) {
	cfg := Config{URI: "mongodb://localhost:27017", Database: "auth_dashboard"}
	opts := cfg.clientOptions()

	if got := opts.GetURI(); got != "mongodb://localhost:27017" {
		t.Fatalf("unexpected URI: %q", got)
	}
	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != defaultMaxPoolSize {
		t.Fatalf("expected default pool size %d, got %v", defaultMaxPoolSize, opts.MaxPoolSize)
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != defaultConnectTimeout {
		t.Fatalf("expected default selection timeout %v, got %v", defaultConnectTimeout, opts.ServerSelectionTimeout)
	}
}

func TestConfig_ClientOptionsOverrides(t *testing.T) {
	cfg := Config{
		URI:         "mongodb://db:27017",
		Timeout:     2 * time.Second,
		MaxPoolSize: 8,
	}
	opts := cfg.clientOptions()

	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != 8 {
		t.Fatalf("expected pool size 8, got %v", opts.MaxPoolSize)
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != 2*time.Second {
		t.Fatalf("expected selection timeout 2s, got %v", opts.ServerSelectionTimeout)
	}
}
