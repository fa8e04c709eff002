package utils

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	URL              string `toml:"url"`
	RequestTimeoutMS int    `toml:"request_timeout_ms"`
}

type PlayerConfig struct {
	Speed float64 `toml:"speed"`
}

type SyncConfig struct {
	IntervalMS int `toml:"interval_ms"`
}

type SessionConfig struct {
	BeaconGraceMS int `toml:"beacon_grace_ms"`
}

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Margin     int `toml:"margin"`
	Resolution ResolutionConfig
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Config struct {
	Server  ServerConfig
	Player  PlayerConfig
	Sync    SyncConfig
	Session SessionConfig
	UI      UIConfig
	Log     LogConfig
}

func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(file, &config); err != nil {
		return nil, err
	}
	config.WithDefaults()
	return &config, nil
}

// WithDefaults fills every zero value that has a sensible default.
// RequestTimeoutMS stays zero, meaning no timeout.
func (c *Config) WithDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = "http://localhost:3001"
	}
	if c.Player.Speed == 0 {
		c.Player.Speed = 5
	}
	if c.Sync.IntervalMS == 0 {
		c.Sync.IntervalMS = 1000 / 30
	}
	if c.Session.BeaconGraceMS == 0 {
		c.Session.BeaconGraceMS = 250
	}
	if c.UI.Margin == 0 {
		c.UI.Margin = 20
	}
	if c.UI.Resolution.X == 0 || c.UI.Resolution.Y == 0 {
		c.UI.Resolution = ResolutionConfig{X: 800, Y: 600}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) SyncInterval() time.Duration {
	return time.Duration(c.Sync.IntervalMS) * time.Millisecond
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutMS) * time.Millisecond
}

func (c *Config) BeaconGrace() time.Duration {
	return time.Duration(c.Session.BeaconGraceMS) * time.Millisecond
}
