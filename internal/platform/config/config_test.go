package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAP_ZOOM", "SESSION_TTL", "SESSION_COOKIE"} {
		unsetenv(t, key)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.MapZoom != 15 {
		t.Fatalf("zoom = %d, want 15", cfg.MapZoom)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("session ttl = %v, want 30m", cfg.SessionTTL)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_PROJECT_IDS", "alpha,beta")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("AUTH_KEYS_FILE", "/etc/registry/keys.json")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if want := []string{"alpha", "beta"}; !reflect.DeepEqual(cfg.AuthProjectIDs, want) {
		t.Fatalf("project ids = %v, want %v", cfg.AuthProjectIDs, want)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("session ttl = %v, want 5m", cfg.SessionTTL)
	}
	if cfg.AuthKeysFile != "/etc/registry/keys.json" {
		t.Fatalf("keys file = %q", cfg.AuthKeysFile)
	}
}

func TestParseRejectsBadDuration(t *testing.T) {
	unsetenv(t, "SESSION_COOKIE")
	t.Setenv("SESSION_TTL", "soon")

	if _, err := Parse(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
