// Package config provides YAML-based configuration loading for the
// breakout terminal host and SSH server.
package config

import (
	"fmt"
	"time"
)

// ArcadeConfig contains all host configuration. Gameplay tuning is fixed
// in the game package and is not configurable.
type ArcadeConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Controls ControlsConfig `yaml:"controls"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// DisplayConfig defines how often the host steps and redraws.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// ControlsConfig defines how terminal input becomes an input frame.
type ControlsConfig struct {
	// KeyHold is how long a direction key counts as held after its last
	// press or auto-repeat. Terminals do not report key releases.
	KeyHold time.Duration `yaml:"key_hold"`
	Mouse   bool          `yaml:"mouse"` // Drag to steer the paddle
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file for interactive play; empty disables
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxTimeout  time.Duration `yaml:"max_timeout"`
}

// Tick rate bounds.
const (
	MinTickRate = 10
	MaxTickRate = 240
)

// Validate checks value ranges.
func (c ArcadeConfig) Validate() error {
	if c.Display.TickRate < MinTickRate || c.Display.TickRate > MaxTickRate {
		return fmt.Errorf("config: tick_rate %d out of range [%d, %d]", c.Display.TickRate, MinTickRate, MaxTickRate)
	}
	if c.Controls.KeyHold <= 0 {
		return fmt.Errorf("config: key_hold must be positive, got %s", c.Controls.KeyHold)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server address is empty")
	}
	if c.Server.IdleTimeout < 0 || c.Server.MaxTimeout < 0 {
		return fmt.Errorf("config: server timeouts must not be negative")
	}
	return nil
}

// TickInterval returns the duration of one host tick.
func (c ArcadeConfig) TickInterval() time.Duration {
	rate := max(c.Display.TickRate, 1)
	return time.Second / time.Duration(rate)
}
