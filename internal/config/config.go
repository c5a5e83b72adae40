package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Game      GameConfig      `yaml:"game"`
	OCR       OCRConfig       `yaml:"ocr"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. Migrations run on
// startup unless SkipMigrate is set.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"`
}

// AuthConfig holds token settings for anonymous sessions.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"beetracker"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// GameConfig holds limits and cache settings for the tracker.
type GameConfig struct {
	MaxTextBytes       int           `yaml:"max_text_bytes"        env:"GAME_MAX_TEXT_BYTES"        env-default:"65536"`
	MaxImageBytes      int64         `yaml:"max_image_bytes"       env:"GAME_MAX_IMAGE_BYTES"       env-default:"10485760"`
	MaxWordsPerRequest int           `yaml:"max_words_per_request" env:"GAME_MAX_WORDS_PER_REQUEST" env-default:"200"`
	TrackerCacheSize   int           `yaml:"tracker_cache_size"    env:"GAME_TRACKER_CACHE_SIZE"    env-default:"1024"`
	TrackerCacheTTL    time.Duration `yaml:"tracker_cache_ttl"     env:"GAME_TRACKER_CACHE_TTL"     env-default:"30m"`
	MirrorQueueSize    int           `yaml:"mirror_queue_size"     env:"GAME_MIRROR_QUEUE_SIZE"     env-default:"256"`
}

// OCRConfig points at the text-recognition service used for screenshots.
// An empty URL disables image endpoints.
type OCRConfig struct {
	URL      string        `yaml:"url"      env:"OCR_URL"`
	Language string        `yaml:"language" env:"OCR_LANGUAGE" env-default:"eng"`
	Timeout  time.Duration `yaml:"timeout"  env:"OCR_TIMEOUT"  env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the expensive endpoints.
type RateLimitConfig struct {
	OCRPerMinute  int `yaml:"ocr_per_minute"  env:"RATE_LIMIT_OCR_PER_MINUTE"  env-default:"10"`
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
}

// CleanupConfig holds settings for cmd/cleanup.
type CleanupConfig struct {
	AnonymousRetentionDays int `yaml:"anonymous_retention_days" env:"CLEANUP_ANONYMOUS_RETENTION_DAYS" env-default:"30"`
}

// CLIConfig is the configuration of the beehints command. The CLI logs
// only warnings unless LOG_LEVEL says otherwise.
type CLIConfig struct {
	DBPath    string `env:"BEEHINTS_DB"`
	LogLevel  string `env:"LOG_LEVEL"  env-default:"warn"`
	LogFormat string `env:"LOG_FORMAT" env-default:"auto"`
}

// Log returns the logger settings of the CLI.
func (c CLIConfig) Log() LogConfig {
	return LogConfig{Level: c.LogLevel, Format: c.LogFormat}
}

// OCREnabled reports whether screenshot endpoints should be served.
func (c OCRConfig) OCREnabled() bool { return c.URL != "" }
