package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/UhCardoso/travel-manager-front/internal/flagx"
	"github.com/UhCardoso/travel-manager-front/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "10s" or as integer nanoseconds. Absent keys keep the value
// already in Config.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	GeocoderURL    string          `json:"geocoder_url"`
	GeocoderLimit  *int            `json:"geocoder_limit"`
	StoragePath    string          `json:"storage_path"`
	AdminEmail     *string         `json:"admin_email"`
	LogLevel       string          `json:"log_level"`
	LogPretty      *bool           `json:"log_pretty"`
}

// parseJSON overlays cfg with the JSON file named by -c or -config in args.
// Without such a flag nothing is loaded.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.GeocoderURL != "" {
		cfg.GeocoderURL = jc.GeocoderURL
	}
	if jc.GeocoderLimit != nil {
		cfg.GeocoderLimit = *jc.GeocoderLimit
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.AdminEmail != nil {
		cfg.AdminEmail = *jc.AdminEmail
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
	return nil
}
