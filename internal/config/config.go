package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds CLI configuration sourced from RBXCLOUD_* environment
// variables.
type Config struct {
	APIKey   string `envconfig:"API_KEY"`
	Debug    bool   `envconfig:"DEBUG"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("rbxcloud", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init configures the global logger from the loaded settings.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Debug().
		Bool("debug", c.Debug).
		Str("log_level", c.Level().String()).
		Msg("configuration loaded")
}

// Level parses the configured log level, defaulting to warn so library
// output stays out of normal CLI results.
func (c *Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
