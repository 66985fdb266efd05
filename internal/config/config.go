// Package config provides YAML-based configuration loading for the 2048
// front ends.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
	Game GameConfig `yaml:"game"`
	SSH  SSHConfig  `yaml:"ssh"`
	Web  WebConfig  `yaml:"web"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig holds settings shared by every session.
type GameConfig struct {
	Seed      int64  `yaml:"seed"`       // 0 = time based
	ShareLink string `yaml:"share_link"` // Appended to the game-over share text
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty = ~/.tui2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig configures the browser server.
type WebConfig struct {
	Address string `yaml:"address"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file for the local terminal game, empty = discard
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Game.ShareLink) == "" {
		errs = append(errs, errors.New("game.share_link must not be empty"))
	}
	if c.SSH.Address == "" {
		errs = append(errs, errors.New("ssh.address must not be empty"))
	}
	if c.SSH.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must be positive, got %s", c.SSH.IdleTimeout))
	}
	if c.Web.Address == "" {
		errs = append(errs, errors.New("web.address must not be empty"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
