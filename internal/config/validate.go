package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Funding.TransferTimeout <= 0 {
		return fmt.Errorf("funding.transfer_timeout must be > 0 (got %v)", c.Funding.TransferTimeout)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if c.Database.Enabled() {
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	return nil
}

func (c DatabaseConfig) validate() error {
	if c.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", c.MaxConns)
	}
	if c.MinConns < 0 || c.MinConns > c.MaxConns {
		return fmt.Errorf("min_conns must be in [0, max_conns] (got %d)", c.MinConns)
	}
	return nil
}
