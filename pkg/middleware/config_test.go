package middleware_test

import (
	"testing"

	"github.com/lianzhou/tizhi/pkg/middleware"
)

func TestCORSConfigDefaults(t *testing.T) {
	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if len(cfg.AllowedMethods) != 5 {
		t.Errorf("allowed methods: got %v", cfg.AllowedMethods)
	}
	if len(cfg.AllowedHeaders) != 2 {
		t.Errorf("allowed headers: got %v", cfg.AllowedHeaders)
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("max age: got %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfigEnvOverride(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://a.com, http://b.com ,")

	cfg := &middleware.CORSConfig{}
	env := &middleware.CORSEnv{Enabled: "TEST_CORS_ENABLED", Origins: "TEST_CORS_ORIGINS"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled override not applied")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != "http://a.com" || cfg.Origins[1] != "http://b.com" {
		t.Errorf("origins: got %v", cfg.Origins)
	}
}

func TestAuthConfigRequiresKeysWhenEnabled(t *testing.T) {
	cfg := &middleware.AuthConfig{Enabled: true}
	if err := cfg.Finalize(nil); err == nil {
		t.Fatal("expected error for enabled auth without keys")
	}

	cfg = &middleware.AuthConfig{Enabled: true, Keys: []string{"k1"}}
	if err := cfg.Finalize(nil); err != nil {
		t.Errorf("Finalize with keys: %v", err)
	}

	cfg = &middleware.AuthConfig{Enabled: false}
	if err := cfg.Finalize(nil); err != nil {
		t.Errorf("Finalize disabled: %v", err)
	}
}

func TestAuthConfigKeysFromEnv(t *testing.T) {
	t.Setenv("TEST_API_KEYS", "key-one,key-two")

	cfg := &middleware.AuthConfig{Enabled: true}
	env := &middleware.AuthEnv{Keys: "TEST_API_KEYS"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if len(cfg.Keys) != 2 {
		t.Errorf("keys: got %v", cfg.Keys)
	}
}

func TestRateLimitConfigDefaults(t *testing.T) {
	cfg := &middleware.RateLimitConfig{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if cfg.PerMinute != 60 {
		t.Errorf("per minute: got %d, want 60", cfg.PerMinute)
	}
	if cfg.Burst != 60 {
		t.Errorf("burst defaults to per-minute quota: got %d, want 60", cfg.Burst)
	}
}

func TestRateLimitConfigExplicitBurst(t *testing.T) {
	cfg := &middleware.RateLimitConfig{PerMinute: 120, Burst: 10}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if cfg.PerMinute != 120 || cfg.Burst != 10 {
		t.Errorf("got per_minute=%d burst=%d", cfg.PerMinute, cfg.Burst)
	}
}

func TestRateLimitConfigMerge(t *testing.T) {
	base := &middleware.RateLimitConfig{Enabled: false, PerMinute: 60, Burst: 60}
	base.Merge(&middleware.RateLimitConfig{Enabled: true, PerMinute: 30})

	if !base.Enabled {
		t.Error("enabled not merged")
	}
	if base.PerMinute != 30 {
		t.Errorf("per minute: got %d, want 30", base.PerMinute)
	}
	if base.Burst != 60 {
		t.Errorf("zero burst must not overwrite: got %d, want 60", base.Burst)
	}
}
