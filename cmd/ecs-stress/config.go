package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Stress  StressConfig  `toml:"stress"`
	Logging LoggingConfig `toml:"logging"`
	Report  ReportConfig  `toml:"report"`
}

type StressConfig struct {
	Duration time.Duration `toml:"duration"`
	Entities int           `toml:"entities"`
	TickRate time.Duration `toml:"tick_rate"` // zero means free-running
	Profile  string        `toml:"profile"`   // "", "cpu", or "mem"
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ReportConfig struct {
	GCPauseMetrics bool   `toml:"gc_pause_metrics"`
	Output         string `toml:"output"` // "" writes to stdout
}

// LoadConfig reads a TOML config, layering it over defaults. An empty
// path returns the defaults untouched.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Stress: StressConfig{
			Duration: 10 * time.Second,
			Entities: 10000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
