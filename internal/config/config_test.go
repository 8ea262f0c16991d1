package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "intern-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in error, got %v", key, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"DB_HOST", "MATCH_TOP_N", "MATCH_MAX_FEATURES", "MAX_UPLOAD_BYTES", "MIGRATIONS_DIR", "REDIS_TTL", "JWT_ACCESS_EXPIRES_IN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.Enabled() {
		t.Fatalf("expected database to be disabled without DB_HOST")
	}
	if cfg.Matching.TopN != 10 || cfg.Matching.MaxFeatures != 500 {
		t.Fatalf("unexpected matching defaults: %+v", cfg.Matching)
	}
	if cfg.App.MaxUploadBytes != 5<<20 {
		t.Fatalf("unexpected upload limit: %d", cfg.App.MaxUploadBytes)
	}
	if cfg.App.MigrationsDir != "" {
		t.Fatalf("unexpected migrations dir: %q", cfg.App.MigrationsDir)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("unexpected redis ttl: %v", cfg.Redis.TTL)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected access expiry: %v", cfg.JWT.AccessExpiresIn)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("MATCH_TOP_N", "5")
	t.Setenv("REDIS_TTL", "120")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.Database.Enabled() {
		t.Fatalf("expected database to be enabled")
	}
	if cfg.Matching.TopN != 5 {
		t.Fatalf("expected top n 5, got %d", cfg.Matching.TopN)
	}
	if cfg.Redis.TTL != 2*time.Minute {
		t.Fatalf("expected 2m ttl, got %v", cfg.Redis.TTL)
	}
	if cfg.JWT.AccessExpiresIn != time.Hour {
		t.Fatalf("expected 1h expiry, got %v", cfg.JWT.AccessExpiresIn)
	}
}

func TestLoad_InvalidNumber(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_TOP_N", "many")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "MATCH_TOP_N") {
		t.Fatalf("expected invalid MATCH_TOP_N error, got %v", err)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{DBHost: "db", DBName: "interns", DBUser: "app", DBPassword: "pw", DBSSLMode: "disable"}
	want := "host=db port=5432 user=app password=pw dbname=interns sslmode=disable"
	if got := c.DSN(); got != want {
		t.Fatalf("unexpected dsn:\n got %q\nwant %q", got, want)
	}
}

func TestLoadDatabase_IgnoresServerKeys(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_SSL_MODE", "")
	t.Setenv("MIGRATIONS_DIR", "")

	db, dir, err := LoadDatabase()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !db.Enabled() || db.DBSSLMode != "disable" || dir != "" {
		t.Fatalf("unexpected database config: %+v dir=%q", db, dir)
	}
}
