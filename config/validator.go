package config

import (
	"fmt"
	"strings"
)

// Validate checks a loaded configuration for values the application cannot
// run with.
func Validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if cfg.Analyze.UserLimit < 0 {
		return fmt.Errorf("analyze user_limit cannot be negative: %d", cfg.Analyze.UserLimit)
	}

	if len(cfg.Data.Paths) == 0 {
		return fmt.Errorf("at least one data path must be configured")
	}
	for _, path := range cfg.Data.Paths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("data paths cannot contain empty entries")
		}
	}

	switch strings.ToLower(cfg.App.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.App.LogLevel)
	}

	return nil
}
