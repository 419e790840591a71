package redis

import (
	"testing"
	"time"
)

func TestConfig_Options(t *testing.T) {
	cfg := Config{Addr: "cache:6379", DB: 2}
	opts := cfg.options()

	if opts.Addr != "cache:6379" {
		t.Fatalf("unexpected addr: %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db: %d", opts.DB)
	}
	if opts.DialTimeout != defaultDialTimeout {
		t.Fatalf("expected dial timeout %v, got %v", defaultDialTimeout, opts.DialTimeout)
	}
}

func TestConfig_PingTimeout(t *testing.T) {
	if got := (Config{}).pingTimeout(); got != defaultPingTimeout {
		t.Fatalf("expected default ping timeout %v, got %v", defaultPingTimeout, got)
	}
	if got := (Config{Timeout: time.Second}).pingTimeout(); got != time.Second {
		t.Fatalf("expected 1s ping timeout, got %v", got)
	}
}
