package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no file can be read.
func Default() Config {
	return Config{
		Game: GameConfig{
			Target: 2048,
			Mode:   "classic",
		},
		Display: DisplayConfig{
			TickRate: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/results.db",
		},
		SSH: SSHConfig{
			Address:     ":2048",
			HostKeyPath: ".ssh/t2048_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
