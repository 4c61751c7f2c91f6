package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# DayTrade Tracker Configuration

[capital]
# Starting account capital used to normalize return rates
initial_capital = 10000.0
# Recurring monthly contribution used by portfolio projections
monthly_contribution = 0.0
# Scale projected returns down to 60% of the historical rate
conservative_projections = false

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to console
console = true
# Log to rotating file
file = true

[database]
# SQLite database location (defaults to the config directory)
# path = "/path/to/tracker.db"
`

// writeTemplate creates a commented config template so first-run users
// have something to edit.
func writeTemplate(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil // already exists
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
