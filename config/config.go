package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config is the configuration for the CLI and the reduction service
type Config struct {
	BindAddr            string        `envconfig:"BIND_ADDR"`
	CORSAllowedOrigins  string        `envconfig:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout     time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
	DefaultStrategy     string        `envconfig:"DEFAULT_STRATEGY"`
	DefaultTarget       int           `envconfig:"DEFAULT_TARGET"`
	ImportanceCacheSize int           `envconfig:"IMPORTANCE_CACHE_SIZE"`
	LogLevel            string        `envconfig:"LOG_LEVEL"`
	RenderWidth         int           `envconfig:"RENDER_WIDTH"`
	RenderHeight        int           `envconfig:"RENDER_HEIGHT"`
}

var cfg *Config

// Get configures the application and returns the configuration
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:            ":23600",
		CORSAllowedOrigins:  "*",
		ShutdownTimeout:     5 * time.Second,
		DefaultStrategy:     "Visvalingam-Whyatt",
		DefaultTarget:       100,
		ImportanceCacheSize: 128,
		LogLevel:            "info",
		RenderWidth:         800,
		RenderHeight:        600,
	}

	return cfg, envconfig.Process("", cfg)
}

// Level parses LogLevel, falling back to info
func (cfg *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Log writes all config properties at debug level
func (cfg *Config) Log(logger zerolog.Logger) {
	logger.Debug().
		Str("BindAddr", cfg.BindAddr).
		Str("CORSAllowedOrigins", cfg.CORSAllowedOrigins).
		Dur("ShutdownTimeout", cfg.ShutdownTimeout).
		Str("DefaultStrategy", cfg.DefaultStrategy).
		Int("DefaultTarget", cfg.DefaultTarget).
		Int("ImportanceCacheSize", cfg.ImportanceCacheSize).
		Str("LogLevel", cfg.LogLevel).
		Int("RenderWidth", cfg.RenderWidth).
		Int("RenderHeight", cfg.RenderHeight).
		Msg("Configuration")
}
