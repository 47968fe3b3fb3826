package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	// Application
	App AppConfig `yaml:"app" json:"app" mapstructure:"app"`

	// Data Sources
	Data DataConfig `yaml:"data" json:"data" mapstructure:"data"`

	// HTTP server
	Server ServerConfig `yaml:"server" json:"server" mapstructure:"server"`

	// Analysis defaults
	Analyze AnalyzeConfig `yaml:"analyze" json:"analyze" mapstructure:"analyze"`
}

// AppConfig contains general application settings
type AppConfig struct {
	Name     string `yaml:"name" json:"name" mapstructure:"name"`
	Version  string `yaml:"version" json:"version" mapstructure:"version"`
	LogLevel string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	LogFile  string `yaml:"log_file" json:"log_file" mapstructure:"log_file"`
}

// DataConfig contains data source and load settings
type DataConfig struct {
	Paths        []string `yaml:"paths" json:"paths" mapstructure:"paths"`
	Watch        bool     `yaml:"watch" json:"watch" mapstructure:"watch"`
	CacheEnabled bool     `yaml:"cache_enabled" json:"cache_enabled" mapstructure:"cache_enabled"`
	CacheDir     string   `yaml:"cache_dir" json:"cache_dir" mapstructure:"cache_dir"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" json:"host" mapstructure:"host"`
	Port            int           `yaml:"port" json:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins" json:"cors_origins" mapstructure:"cors_origins"`
}

// AnalyzeConfig contains aggregation defaults
type AnalyzeConfig struct {
	UserLimit int `yaml:"user_limit" json:"user_limit" mapstructure:"user_limit"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:     "promptlens",
			Version:  "dev",
			LogLevel: "info",
		},
		Data: DataConfig{
			Paths: []string{"./data"},
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			CORSOrigins:     []string{"http://localhost:3000"},
		},
		Analyze: AnalyzeConfig{
			UserLimit: 10,
		},
	}
}
