package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/game2048"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Seed:      0,
			ShareLink: game2048.DefaultShareLink,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Web: WebConfig{
			Address: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
