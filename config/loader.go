package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional YAML file, and
// PROMPTLENS_* environment variables, in that order of increasing
// precedence. cfgFile may be empty, in which case $HOME/.promptlens.yaml and
// ./promptlens.yaml are tried.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("promptlens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(homeDir)
		}
	}

	v.SetEnvPrefix("PROMPTLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing implicit config file is fine; anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Data.CacheDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.Data.CacheDir = filepath.Join(homeDir, ".cache", "promptlens")
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("app.name", defaults.App.Name)
	v.SetDefault("app.version", defaults.App.Version)
	v.SetDefault("app.log_level", defaults.App.LogLevel)
	v.SetDefault("app.log_file", defaults.App.LogFile)
	v.SetDefault("data.paths", defaults.Data.Paths)
	v.SetDefault("data.watch", defaults.Data.Watch)
	v.SetDefault("data.cache_enabled", defaults.Data.CacheEnabled)
	v.SetDefault("data.cache_dir", defaults.Data.CacheDir)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("server.cors_origins", defaults.Server.CORSOrigins)
	v.SetDefault("analyze.user_limit", defaults.Analyze.UserLimit)
}
