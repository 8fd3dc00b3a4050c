package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Rounds != nil || cfg.Audio.Mute != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[game]
rounds = 5
correct-delay = "1s"

[audio]
mute = true
volume = 0.25

[log]
debug = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Rounds == nil || *cfg.Game.Rounds != 5 {
		t.Fatalf("unexpected rounds: %v", cfg.Game.Rounds)
	}
	if cfg.Game.RoundSeconds != nil {
		t.Fatalf("unset key must stay nil")
	}
	if cfg.Audio.Mute == nil || !*cfg.Audio.Mute {
		t.Fatalf("expected mute")
	}
	if cfg.Log.Debug == nil || !*cfg.Log.Debug {
		t.Fatalf("expected debug")
	}
	d, err := ParseDuration("correct-delay", cfg.Game.CorrectDelay)
	if err != nil {
		t.Fatalf("parse duration: %v", err)
	}
	if d == nil || *d != time.Second {
		t.Fatalf("unexpected duration: %v", d)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nrounds = \"ten\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseDurationInvalid(t *testing.T) {
	bad := "soon"
	if _, err := ParseDuration("wrong-delay", &bad); err == nil {
		t.Fatalf("expected error")
	}
	d, err := ParseDuration("wrong-delay", nil)
	if err != nil || d != nil {
		t.Fatalf("nil value must yield nil duration")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tuihanzi", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "tuihanzi", "tuihanzi.log") {
		t.Fatalf("unexpected log path %s", got)
	}
}
