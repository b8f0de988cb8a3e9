// Package daemon manages the Momentum daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	Data       DataConfig       `toml:"data"`
	Engagement EngagementConfig `toml:"engagement"`
	Telemetry  TelemetryConfig  `toml:"telemetry"`
	Logging    LoggingConfig    `toml:"logging"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// DataConfig controls where state lives.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// EngagementConfig tunes the reward and streak behavior.
type EngagementConfig struct {
	// MinimumTasksPerDay is the daily streak qualification threshold.
	MinimumTasksPerDay int `toml:"minimum_tasks_per_day"`

	// MVDTaskIDs lists the task IDs whose completion keeps a day from
	// counting as zero, even when nothing else happened.
	MVDTaskIDs []string `toml:"mvd_task_ids"`

	// SuggestionLimit caps the ranked suggestion list.
	SuggestionLimit int `toml:"suggestion_limit"`
}

// TelemetryConfig controls metrics exposure.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := momentumHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7321,
			CORSOrigins: []string{"*"},
		},
		Data: DataConfig{
			Dir: homeDir,
		},
		Engagement: EngagementConfig{
			MinimumTasksPerDay: 1,
			SuggestionLimit:    5,
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "momentum.log"),
		},
	}
}

// LoadConfig reads config from ~/.momentum/config.toml, falling back to
// defaults when no file exists.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(momentumHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Engagement.MinimumTasksPerDay < 1 {
		cfg.Engagement.MinimumTasksPerDay = 1
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.momentum/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(momentumHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// momentumHome returns the Momentum data directory.
func momentumHome() string {
	if env := os.Getenv("MOMENTUM_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".momentum")
}

// MomentumHome is exported for use by other packages.
func MomentumHome() string {
	return momentumHome()
}
