package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadCLI reads the beehints configuration from the environment only.
// Without BEEHINTS_DB the database lives in the user config directory.
// The --db flag, when given, overrides DBPath.
func LoadCLI() (*CLIConfig, error) {
	var cfg CLIConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultCLIDBPath()
	}
	return &cfg, nil
}

// DefaultCLIDBPath returns <user config dir>/beehints/beehints.db, or a file
// in the working directory when no config dir is known.
func DefaultCLIDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "beehints.db"
	}
	return filepath.Join(dir, "beehints", "beehints.db")
}
