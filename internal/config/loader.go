package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// defaultPath is read when present and no path was given.
const defaultPath = "./config.yaml"

// defaults seeds the fields whose zero value is a valid setting. cleanenv
// fills env-default only into zero fields, so an explicit false or 0 in YAML
// would be lost if these defaults lived in tags.
func defaults() Config {
	var cfg Config
	cfg.SRS.ResetMasteryOnMistake = true
	cfg.SRS.FreezeAfterFailures = 3
	cfg.Scheduler.Enabled = true
	cfg.RateLimit.Enabled = true
	cfg.CORS.AllowCredentials = true
	return cfg
}

// Load reads configuration from the file named by CONFIG_PATH (or
// ./config.yaml) and the environment. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads configuration with priority ENV > YAML > env-default tags.
// A .env file in the working directory is loaded into the environment first
// without overriding variables that are already set.
//
// The YAML file is path, else CONFIG_PATH, else ./config.yaml. A path given
// explicitly (argument or CONFIG_PATH) must exist; the default file is
// optional.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg := defaults()
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
