package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  skip_migrate: true

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  access_token_ttl: "24h"

game:
  max_text_bytes: 4096
  max_image_bytes: 2048
  max_words_per_request: 50
  tracker_cache_size: 16
  tracker_cache_ttl: "5m"
  mirror_queue_size: 8

ocr:
  url: "http://ocr:8884/ocr"
  language: "eng"
  timeout: "12s"

log:
  level: "debug"
  format: "text"

rate_limit:
  ocr_per_minute: 3
  auth_per_minute: 7

cleanup:
  anonymous_retention_days: 14
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if !cfg.Database.SkipMigrate {
		t.Error("database.skip_migrate should be true")
	}

	// Auth
	if cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("auth.access_token_ttl = %v, want 24h", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.JWTIssuer != "beetracker" {
		t.Errorf("auth.jwt_issuer = %q, want default", cfg.Auth.JWTIssuer)
	}

	// Game
	if cfg.Game.MaxTextBytes != 4096 {
		t.Errorf("game.max_text_bytes = %d, want 4096", cfg.Game.MaxTextBytes)
	}
	if cfg.Game.MaxWordsPerRequest != 50 {
		t.Errorf("game.max_words_per_request = %d, want 50", cfg.Game.MaxWordsPerRequest)
	}
	if cfg.Game.TrackerCacheTTL != 5*time.Minute {
		t.Errorf("game.tracker_cache_ttl = %v, want 5m", cfg.Game.TrackerCacheTTL)
	}
	if cfg.Game.MirrorQueueSize != 8 {
		t.Errorf("game.mirror_queue_size = %d, want 8", cfg.Game.MirrorQueueSize)
	}

	// OCR
	if !cfg.OCR.OCREnabled() {
		t.Error("ocr should be enabled")
	}
	if cfg.OCR.Timeout != 12*time.Second {
		t.Errorf("ocr.timeout = %v, want 12s", cfg.OCR.Timeout)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}

	// Rate limit and cleanup
	if cfg.RateLimit.OCRPerMinute != 3 {
		t.Errorf("rate_limit.ocr_per_minute = %d, want 3", cfg.RateLimit.OCRPerMinute)
	}
	if cfg.Cleanup.AnonymousRetentionDays != 14 {
		t.Errorf("cleanup.anonymous_retention_days = %d, want 14", cfg.Cleanup.AnonymousRetentionDays)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Database.SkipMigrate {
		t.Error("database.skip_migrate should default to false")
	}
	if cfg.OCR.OCREnabled() {
		t.Error("ocr should be disabled without a url")
	}
	if cfg.Game.MaxWordsPerRequest != 200 {
		t.Errorf("game.max_words_per_request = %d, want 200 (default)", cfg.Game.MaxWordsPerRequest)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadCLI(t *testing.T) {
	t.Setenv("BEEHINTS_DB", "/tmp/bee.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadCLI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "/tmp/bee.db" {
		t.Errorf("db path = %q, want /tmp/bee.db", cfg.DBPath)
	}
	if cfg.Log().Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log().Level)
	}
	if cfg.Log().Format != "auto" {
		t.Errorf("log.format = %q, want auto (default)", cfg.Log().Format)
	}
}

func TestLoadCLI_Defaults(t *testing.T) {
	t.Setenv("BEEHINTS_DB", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	cfg, err := LoadCLI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != DefaultCLIDBPath() {
		t.Errorf("db path = %q, want %q", cfg.DBPath, DefaultCLIDBPath())
	}
	if cfg.Log().Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log().Level)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: true},
		{name: "empty jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{name: "zero token ttl", mutate: func(c *Config) { c.Auth.AccessTokenTTL = 0 }, wantErr: true},
		{name: "zero text limit", mutate: func(c *Config) { c.Game.MaxTextBytes = 0 }, wantErr: true},
		{name: "negative image limit", mutate: func(c *Config) { c.Game.MaxImageBytes = -1 }, wantErr: true},
		{name: "zero words per request", mutate: func(c *Config) { c.Game.MaxWordsPerRequest = 0 }, wantErr: true},
		{name: "zero cache size", mutate: func(c *Config) { c.Game.TrackerCacheSize = 0 }, wantErr: true},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Game.TrackerCacheTTL = 0 }, wantErr: true},
		{name: "zero mirror queue", mutate: func(c *Config) { c.Game.MirrorQueueSize = 0 }, wantErr: true},
		{name: "relative ocr url", mutate: func(c *Config) { c.OCR.URL = "ocr/path" }, wantErr: true},
		{name: "ocr without timeout", mutate: func(c *Config) { c.OCR.URL = "http://ocr"; c.OCR.Timeout = 0 }, wantErr: true},
		{name: "ocr disabled", mutate: func(c *Config) { c.OCR.URL = ""; c.OCR.Timeout = 0 }},
		{name: "zero ocr rate", mutate: func(c *Config) { c.RateLimit.OCRPerMinute = 0 }, wantErr: true},
		{name: "zero retention", mutate: func(c *Config) { c.Cleanup.AnonymousRetentionDays = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Auth: AuthConfig{
			JWTSecret:      "this-is-a-very-long-jwt-secret-for-testing-32+",
			AccessTokenTTL: time.Hour,
		},
		Game: GameConfig{
			MaxTextBytes:       65536,
			MaxImageBytes:      1 << 20,
			MaxWordsPerRequest: 200,
			TrackerCacheSize:   128,
			TrackerCacheTTL:    30 * time.Minute,
			MirrorQueueSize:    64,
		},
		OCR: OCRConfig{
			URL:     "http://localhost:8884/ocr",
			Timeout: 30 * time.Second,
		},
		RateLimit: RateLimitConfig{OCRPerMinute: 10, AuthPerMinute: 20},
		Cleanup:   CleanupConfig{AnonymousRetentionDays: 30},
	}
}
