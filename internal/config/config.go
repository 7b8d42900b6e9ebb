package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven configuration. DatabaseURL is required;
// a missing value is a fatal startup error.
type Config struct {
	Addr            string   `envconfig:"ADDR" default:":5000"`
	DatabaseURL     string   `envconfig:"DATABASE_URL" required:"true"`
	AllowAllOrigins bool     `envconfig:"CORS_ALLOW_ALL" default:"true"`
	AllowOrigins    []string `envconfig:"CORS_ALLOW_ORIGINS"`
	LogLevel        string   `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
