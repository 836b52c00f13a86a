package config

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the Travel Manager client.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL, overwrite"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, overwrite"`
	GeocoderURL    string        `env:"GEOCODER_URL, overwrite"`
	GeocoderLimit  int           `env:"GEOCODER_LIMIT, overwrite"`
	StoragePath    string        `env:"STORAGE_PATH, overwrite"`
	AdminEmail     string        `env:"ADMIN_EMAIL, overwrite"`
	LogLevel       string        `env:"LOG_LEVEL, overwrite"`
	LogPretty      bool          `env:"LOG_PRETTY, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost/api"
	c.RequestTimeout = 10 * time.Second
	c.GeocoderURL = "https://nominatim.openstreetmap.org"
	c.GeocoderLimit = 0
	c.StoragePath = "travel-manager.db"
	c.AdminEmail = "admin@admin.com"
	c.LogLevel = "info"
	c.LogPretty = false
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.APIBaseURL == "" {
		errs = append(errs, errors.New("api base url is empty"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.StoragePath == "" {
		errs = append(errs, errors.New("storage path is empty"))
	}
	if c.GeocoderLimit < 0 {
		errs = append(errs, fmt.Errorf("geocoder limit must not be negative, got %d", c.GeocoderLimit))
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from .env, JSON (if present), the environment and command-line flags.
// Later sources take precedence over earlier ones. args excludes the
// program name.
func LoadConfig(ctx context.Context, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, nil); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
