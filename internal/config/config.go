// Package config loads cubestate settings from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds all cubestate settings.
type Config struct {
	DBPath         string            `yaml:"db_path"`
	ScrambleLength int               `yaml:"scramble_length"`
	Theme          map[string]string `yaml:"theme"`
	SSH            SSHConfig         `yaml:"ssh"`
}

// SSHConfig configures the SSH server used by `cubestate serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Default returns the hardcoded defaults, matching default.yaml.
func Default() Config {
	return Config{
		DBPath:         "~/.cubestate/cubestate.db",
		ScrambleLength: 20,
		Theme: map[string]string{
			"G": "#00A651",
			"B": "#0046AD",
			"O": "#FF5800",
			"R": "#C41E3A",
			"W": "#FFFFFF",
			"Y": "#FFD500",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// Validate checks the settings for values the application cannot use.
func (c Config) Validate() error {
	if c.ScrambleLength <= 0 {
		return fmt.Errorf("scramble_length must be positive, got %d", c.ScrambleLength)
	}
	for symbol := range c.Theme {
		if len(symbol) != 1 || !strings.Contains("GBORWY", symbol) {
			return fmt.Errorf("theme: unknown facelet symbol %q", symbol)
		}
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("ssh.idle_timeout_minutes must not be negative")
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Dir returns the cubestate directory in the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubestate"), nil
}
