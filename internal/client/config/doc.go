// Package config loads runtime configuration for the Travel Manager client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present. Its variables are
//     exported to the process environment unless already set.
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Environment variables with the TRAVEL_ prefix (see parseEnv).
//  5. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string        backend API base URL
//	-t duration      request timeout
//	-g string        geocoder base URL
//	-n int           maximum geocoder results
//	-s string        local session database path
//	-admin-email     fallback admin address
//	-l string        log level
//	-pretty          human-readable logs
//
// # Environment
//
//	TRAVEL_API_BASE_URL, TRAVEL_REQUEST_TIMEOUT, TRAVEL_GEOCODER_URL,
//	TRAVEL_GEOCODER_LIMIT, TRAVEL_STORAGE_PATH, TRAVEL_ADMIN_EMAIL,
//	TRAVEL_LOG_LEVEL, TRAVEL_LOG_PRETTY
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost/api",
//	  "request_timeout": "10s",
//	  "geocoder_url": "https://nominatim.openstreetmap.org",
//	  "geocoder_limit": 5,
//	  "storage_path": "travel-manager.db",
//	  "admin_email": "admin@admin.com",
//	  "log_level": "info",
//	  "log_pretty": false
//	}
package config
