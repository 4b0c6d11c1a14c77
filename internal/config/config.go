// Package config loads the stepwise service configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwise/engine"
)

// Config is the top-level stepwise configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Playback PlaybackConfig `yaml:"playback"`
	Ring     RingConfig     `yaml:"ring"`
	Limits   engine.Limits  `yaml:"limits"` // per-run input caps, zero fields defaulted
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// StoreConfig bounds the in-memory run store.
type StoreConfig struct {
	Capacity int `yaml:"capacity"` // oldest run evicted beyond this
}

// PlaybackConfig sets the CLI replay speed.
type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// RingConfig holds consistent-hashing defaults.
type RingConfig struct {
	Replicas int `yaml:"replicas"`
}

// LogConfig selects the log level: debug | info | warn | error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()

	return &cfg
}

// LoadFile reads a YAML configuration file and applies defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.applyDefaults()
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Store.Capacity <= 0 {
		c.Store.Capacity = 256
	}
	if c.Playback.Interval <= 0 {
		c.Playback.Interval = 250 * time.Millisecond
	}
	if c.Ring.Replicas <= 0 {
		c.Ring.Replicas = 1
	}
	c.Limits = c.Limits.WithDefaults()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", l.Level, err)
	}

	return lvl, nil
}
