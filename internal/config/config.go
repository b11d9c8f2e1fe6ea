// Package config loads the runtime tuning file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything adjustable without a rebuild. Game balance
// constants are compiled in; this covers deployment concerns only.
type Config struct {
	// Seed for the simulation's random stream. 0 means derive one from the
	// OS entropy pool at startup.
	Seed int64 `yaml:"seed"`

	// TickIntervalMS is the real-time length of one simulation tick.
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// DBPath is the sqlite database file.
	DBPath string `yaml:"db_path"`

	// APIAddr is the HTTP listen address, e.g. ":8080".
	APIAddr string `yaml:"api_addr"`

	// AdminToken guards mutating API endpoints. Empty disables them.
	AdminToken string `yaml:"admin_token"`

	// Autosave persists a snapshot at every day boundary.
	Autosave bool `yaml:"autosave"`

	// SnapshotHistory keeps compressed autosave history rows when true.
	SnapshotHistory bool `yaml:"snapshot_history"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TickIntervalMS:  1000,
		DBPath:          "grandmall.db",
		APIAddr:         ":8080",
		Autosave:        true,
		SnapshotHistory: true,
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TickIntervalMS <= 0 {
		return cfg, fmt.Errorf("config %s: tick_interval_ms must be positive", path)
	}
	return cfg, nil
}

// TickInterval returns the tick length as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}
