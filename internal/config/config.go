// Package config provides configuration management for the trade journal.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Capital  CapitalConfig  `mapstructure:"capital"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
}

// CapitalConfig holds the account parameters analytics normalize against.
type CapitalConfig struct {
	InitialCapital          float64 `mapstructure:"initial_capital"`
	MonthlyContribution     float64 `mapstructure:"monthly_contribution"`
	ConservativeProjections bool    `mapstructure:"conservative_projections"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/daytrade-tracker"
	}
	return filepath.Join(home, ".config", "daytrade-tracker")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used; a missing config file
// creates a template and returns defaults.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := writeTemplate(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.sanitize()
	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("capital.initial_capital", 10000.0)
	v.SetDefault("capital.monthly_contribution", 0.0)
	v.SetDefault("capital.conservative_projections", false)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
	v.SetDefault("database.path", filepath.Join(configDir, "tracker.db"))
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRACKER_INITIAL_CAPITAL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Capital.InitialCapital = f
		}
	}
	if v := os.Getenv("TRACKER_MONTHLY_CONTRIBUTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Capital.MonthlyContribution = f
		}
	}
	if v := os.Getenv("TRACKER_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// sanitize clamps out-of-range user input at the boundary, before the
// values reach the analytics engine.
func (c *Config) sanitize() {
	if c.Capital.InitialCapital < 0 {
		c.Capital.InitialCapital = 0
	}
	if c.Capital.MonthlyContribution < 0 {
		c.Capital.MonthlyContribution = 0
	}
}
