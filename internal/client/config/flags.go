package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/UhCardoso/travel-manager-front/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-g", "-n", "-s", "-admin-email", "-l", "-pretty"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        backend API base URL
//	-t duration      request timeout, e.g. 10s
//	-g string        geocoder base URL
//	-n int           maximum geocoder results (0 = server default)
//	-s string        path of the local session database
//	-admin-email     fallback admin address for users without a role
//	-l string        log level (debug, info, warn, error)
//	-pretty          human-readable log output
//
// Other flags in args are ignored, see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.GeocoderURL, "g", cfg.GeocoderURL, "geocoder base URL")
	fs.IntVar(&cfg.GeocoderLimit, "n", cfg.GeocoderLimit, "maximum geocoder results")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "local session database path")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "fallback admin address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.LogPretty, "pretty", cfg.LogPretty, "human-readable logs")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
