// Package config provides YAML-based configuration loading for tui-2048.
package config

import (
	"fmt"
	"time"
)

// Config contains all runtime settings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds rules that apply to new games.
type GameConfig struct {
	Target int    `yaml:"target"` // Win tile for classic mode
	Mode   string `yaml:"mode"`   // Default mode for "play" without arguments
}

// DisplayConfig controls the terminal front-end.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}

// StorageConfig points at the finished-game log.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Known modes and log levels.
var (
	validModes     = []string{"classic", "campaign", "endless"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Game.Target < 4 || c.Game.Target&(c.Game.Target-1) != 0 {
		return fmt.Errorf("config: game.target %d: %w", c.Game.Target, ErrInvalidTarget)
	}
	if !contains(validModes, c.Game.Mode) {
		return fmt.Errorf("config: game.mode %q: %w", c.Game.Mode, ErrUnknownMode)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: display.tick_rate %d: %w", c.Display.TickRate, ErrInvalidTickRate)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout %s: %w", c.SSH.IdleTimeout, ErrInvalidTimeout)
	}
	if !contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, ErrUnknownLogLevel)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
