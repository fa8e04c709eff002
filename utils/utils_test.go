package utils

import (
	"testing"
	"time"
)

// TestReadTOML calls ReadTOML with a known test config, checking
// for a valid return value for each key
func TestReadTOML(t *testing.T) {
	cfg, err := ReadTOML("testConf.toml")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.URL != "http://example.test:3001" {
		t.Fatalf(`Server.URL = %q, want "http://example.test:3001"`, cfg.Server.URL)
	}
	if cfg.RequestTimeout() != 1500*time.Millisecond {
		t.Fatalf(`RequestTimeout() = %v, want 1.5s`, cfg.RequestTimeout())
	}
	if cfg.Player.Speed != 1 {
		t.Fatalf(`Player.Speed = %v, want 1`, cfg.Player.Speed)
	}
	if cfg.SyncInterval() != 50*time.Millisecond {
		t.Fatalf(`SyncInterval() = %v, want 50ms`, cfg.SyncInterval())
	}
	if cfg.UI.Margin != 10 {
		t.Fatalf(`UI.Margin = %v, want 10`, cfg.UI.Margin)
	}
	if cfg.UI.Resolution.X != 1 || cfg.UI.Resolution.Y != 1 {
		t.Fatalf(`UI.Resolution = %+v, want {1 1}`, cfg.UI.Resolution)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf(`Log.Level = %q, want "debug"`, cfg.Log.Level)
	}
	// Not in the file.
	if cfg.BeaconGrace() != 250*time.Millisecond {
		t.Fatalf(`BeaconGrace() = %v, want 250ms`, cfg.BeaconGrace())
	}
}

func TestWithDefaults(t *testing.T) {
	var cfg Config
	cfg.WithDefaults()

	if cfg.Server.URL != "http://localhost:3001" {
		t.Fatalf(`Server.URL = %q`, cfg.Server.URL)
	}
	if cfg.Player.Speed != 5 {
		t.Fatalf(`Player.Speed = %v, want 5`, cfg.Player.Speed)
	}
	if cfg.SyncInterval() != 33*time.Millisecond {
		t.Fatalf(`SyncInterval() = %v, want 33ms`, cfg.SyncInterval())
	}
	if cfg.RequestTimeout() != 0 {
		t.Fatalf(`RequestTimeout() = %v, want none`, cfg.RequestTimeout())
	}
	if cfg.UI.Margin != 20 {
		t.Fatalf(`UI.Margin = %v, want 20`, cfg.UI.Margin)
	}
}

func TestReadTOMLMissingFile(t *testing.T) {
	if _, err := ReadTOML("does-not-exist.toml"); err == nil {
		t.Fatal("ReadTOML succeeded on a missing file")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(LogConfig{Level: "loud"}); err == nil {
		t.Fatal("NewLogger accepted an unknown level")
	}
	if _, err := NewLogger(LogConfig{Level: "warn"}); err != nil {
		t.Fatal(err)
	}
}
