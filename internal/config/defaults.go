package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultConfig returns the built-in configuration. It matches the
// embedded defaults/arcade.yaml.
func DefaultConfig() ArcadeConfig {
	return ArcadeConfig{
		Display: DisplayConfig{
			TickRate: 60,
		},
		Controls: ControlsConfig{
			KeyHold: 150 * time.Millisecond,
			Mouse:   true,
		},
		Storage: StorageConfig{
			DBPath: "~/.arcade/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/arcade.log",
		},
		Server: ServerConfig{
			Address:     ":2222",
			HostKeyPath: ".ssh/arcade_host_key",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}
