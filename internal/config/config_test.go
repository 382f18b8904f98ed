package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FOOTBALL_DATA_TOKEN", "test-token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected default app env %q, got %q", EnvDev, cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("expected default read timeout 15s, got %s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 0 {
		t.Fatalf("expected write timeout disabled by default, got %s", cfg.WriteTimeout)
	}
	if cfg.StoreDriver != StoreDriverMongo {
		t.Fatalf("expected default store driver %q, got %q", StoreDriverMongo, cfg.StoreDriver)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" || cfg.MongoDatabase != "football" {
		t.Fatalf("unexpected mongo defaults: %q %q", cfg.MongoURI, cfg.MongoDatabase)
	}
	if cfg.FootballDataToken != "test-token" {
		t.Fatalf("expected token carried through, got %q", cfg.FootballDataToken)
	}
	if cfg.FootballDataMaxTries != 5 {
		t.Fatalf("expected default max tries 5, got %d", cfg.FootballDataMaxTries)
	}
	if cfg.FootballDataBaseURL != "https://api.football-data.org" {
		t.Fatalf("unexpected default base url %q", cfg.FootballDataBaseURL)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("FOOTBALL_DATA_TOKEN", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "FOOTBALL_DATA_TOKEN") {
		t.Fatalf("expected missing-token error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("FOOTBALL_DATA_MAX_TRIES", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AppEnv != EnvProd || cfg.HTTPAddr != ":9090" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.StoreDriver != StoreDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.StoreDriver)
	}
	if cfg.FootballDataMaxTries != 3 {
		t.Fatalf("expected max tries 3, got %d", cfg.FootballDataMaxTries)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad app env", "APP_ENV", "staging-2"},
		{"bad store driver", "STORE_DRIVER", "postgres"},
		{"bad read timeout", "READ_TIMEOUT", "soon"},
		{"bad max tries", "FOOTBALL_DATA_MAX_TRIES", "many"},
		{"non-positive max tries", "FOOTBALL_DATA_MAX_TRIES", "0"},
		{"non-positive upstream timeout", "FOOTBALL_DATA_TIMEOUT", "-1s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
