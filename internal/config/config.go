// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment
// variables. It is constructed once at startup and injected into each
// component; nothing reads ambient process state after Load returns.
type Config struct {
	ListenAddr string `env:"SMARTBRAIN_LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath     string `env:"SMARTBRAIN_DB_PATH" envDefault:"smartbrain.db"`

	// Clarifai credentials. All three are required for face detection; if any
	// is absent the app starts with detection disabled and the detect endpoint
	// reports a configuration error instead of attempting a call.
	ClarifaiPAT    string `env:"SMARTBRAIN_CLARIFAI_PAT"`
	ClarifaiUserID string `env:"SMARTBRAIN_CLARIFAI_USER_ID"`
	ClarifaiAppID  string `env:"SMARTBRAIN_CLARIFAI_APP_ID"`

	// DetectTimeout bounds each detection round trip.
	DetectTimeout time.Duration `env:"SMARTBRAIN_DETECT_TIMEOUT" envDefault:"10s"`
}

// HasVisionCredentials returns true when the PAT, user id, and app id are all
// non-empty. Used by the composition root to decide whether to create a
// vision client at startup.
func (c *Config) HasVisionCredentials() bool {
	return c.ClarifaiPAT != "" && c.ClarifaiUserID != "" && c.ClarifaiAppID != ""
}

// Load reads configuration from SMARTBRAIN_* environment variables and
// returns a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DetectTimeout <= 0 {
		return nil, fmt.Errorf("SMARTBRAIN_DETECT_TIMEOUT must be positive, got %s", cfg.DetectTimeout)
	}

	return &cfg, nil
}
