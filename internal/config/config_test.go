package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.WorldstateURL != "https://deathsnacks.com/wf/data" {
		t.Errorf("unexpected worldstate URL: %q", cfg.WorldstateURL)
	}
	if cfg.MarketURL != "http://warframe.market/api" {
		t.Errorf("unexpected market URL: %q", cfg.MarketURL)
	}
	if cfg.NewsLimit != 3 {
		t.Errorf("NewsLimit = %d, want 3", cfg.NewsLimit)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Load()

	cfg.WorldstateURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a malformed worldstate URL")
	}

	cfg = Load()
	cfg.NewsLimit = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a zero news limit")
	}

	cfg = Load()
	cfg.Env = "staging"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unknown environment name")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NEWS_LIMIT", "5")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg := Load()
	if cfg.NewsLimit != 5 {
		t.Errorf("NewsLimit = %d, want 5", cfg.NewsLimit)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}

	// Unparsable values fall back to the default.
	t.Setenv("NEWS_LIMIT", "lots")
	if cfg := Load(); cfg.NewsLimit != 3 {
		t.Errorf("NewsLimit = %d, want default 3", cfg.NewsLimit)
	}
}
