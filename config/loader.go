package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimeoutMS = 30000
	defaultTopic     = "transit.alerts.invalidate"
)

// Load reads and validates the application configuration from path.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	// Deployments pass credentials via environment, not the file.
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Feed.TimeoutMS == 0 {
		cfg.Feed.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Invalidation.Topic == "" {
		cfg.Invalidation.Topic = defaultTopic
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
