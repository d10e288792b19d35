package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/travel")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("DATA_ENCRYPTION_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.JWTExpiresIn != 24*time.Hour || cfg.RateLimitPerMinute != 100 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"missing database": {"DATABASE_URL": "", "JWT_SECRET": "s"},
		"missing secret":   {"DATABASE_URL": "postgres://x", "JWT_SECRET": ""},
		"short key":        {"DATABASE_URL": "postgres://x", "JWT_SECRET": "s", "DATA_ENCRYPTION_KEY": "short"},
		"bad expiry":       {"DATABASE_URL": "postgres://x", "JWT_SECRET": "s", "JWT_EXPIRES_IN": "soon"},
		"bad rate limit":   {"DATABASE_URL": "postgres://x", "JWT_SECRET": "s", "RATE_LIMIT_PER_MINUTE": "-1"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"DATA_ENCRYPTION_KEY", "JWT_EXPIRES_IN", "RATE_LIMIT_PER_MINUTE"} {
				t.Setenv(key, "")
			}
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadReadsLoggingFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "GIN_MODE=release\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)

	t.Setenv("DATABASE_URL", "postgres://localhost/travel")
	t.Setenv("JWT_SECRET", "secret")
	// godotenv never overrides variables that are already present, even empty.
	for _, key := range []string{"GIN_MODE", "LOG_LEVEL", "ENVIRONMENT", "ENV", "DATA_ENCRYPTION_KEY", "JWT_EXPIRES_IN", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsProduction() || cfg.LogLevel != "debug" {
		t.Fatalf("expected release mode and debug level from .env, got %+v", cfg)
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		cfg  Config
		want bool
	}{
		{Config{GinMode: "debug"}, false},
		{Config{GinMode: "release"}, true},
		{Config{GinMode: "debug", Environment: "production"}, true},
	}
	for _, tt := range tests {
		if got := tt.cfg.IsProduction(); got != tt.want {
			t.Fatalf("%+v: got %v, want %v", tt.cfg, got, tt.want)
		}
	}
}
