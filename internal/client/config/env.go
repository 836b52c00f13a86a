package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TRAVEL_"

const dotEnvFile = ".env"

// loadDotEnv exports the variables of path into the process environment
// without replacing variables that are already set. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with TRAVEL_* variables. Unset variables leave the
// current value alone. A nil lookuper reads the process environment.
func parseEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	if l == nil {
		l = envconfig.OsLookuper()
	}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, l),
	})
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}
