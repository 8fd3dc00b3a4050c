// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

// GameConfig maps game-related settings.
type GameConfig struct {
	Rounds       *int    `toml:"rounds"`
	RoundSeconds *int    `toml:"round-seconds"`
	CorrectDelay *string `toml:"correct-delay"`
	WrongDelay   *string `toml:"wrong-delay"`
	TimeoutDelay *string `toml:"timeout-delay"`
	Dataset      *string `toml:"dataset"`
	Seed         *int64  `toml:"seed"`
}

// AudioConfig maps audio cue settings.
type AudioConfig struct {
	Mute   *bool    `toml:"mute"`
	Volume *float64 `toml:"volume"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Debug *bool   `toml:"debug"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ParseDuration parses an optional duration value such as "1.5s".
func ParseDuration(key string, value *string) (*time.Duration, error) {
	if value == nil {
		return nil, nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, *value, err)
	}
	return &d, nil
}
