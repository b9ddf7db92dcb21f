package config

// FeedConfig contains the GTFS-Realtime service-alerts feed configuration
type FeedConfig struct {
	ServiceAlertsURL string `yaml:"service_alerts_url" validate:"required,url"`
	TimeoutMS        int    `yaml:"timeoutMS" validate:"gte=0"`
}

// DatabaseConfig contains the relational store configuration
type DatabaseConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	DSN    string `yaml:"dsn" validate:"required"`
}

// InvalidationConfig contains the cache-invalidation event configuration.
// When disabled, the invalidation signal is only logged.
type InvalidationConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers" validate:"required_if=Enabled true,omitempty,min=1,dive,hostname_port"`
	Topic   string   `yaml:"topic"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	LogLevel     string             `yaml:"log_level"`
	Feed         FeedConfig         `yaml:"feed" validate:"required"`
	Database     DatabaseConfig     `yaml:"database" validate:"required"`
	Invalidation InvalidationConfig `yaml:"invalidation"`
}
