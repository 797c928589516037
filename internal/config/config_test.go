package config

import (
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// No config file exists relative to the test working directory, so Load
	// must fall back to defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "release" {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.Port != 5000 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.ReadLimit != 32768 {
		t.Errorf("read_limit = %d", cfg.ReadLimit)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Errorf("ping_period = %v", cfg.PingPeriod)
	}
	if len(cfg.STUNURLs) == 0 {
		t.Errorf("expected default STUN urls")
	}
}
