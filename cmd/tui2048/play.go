package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows / WASD / HJKL - Slide tiles
  Mouse                - Click the on-screen arrow buttons
  R                    - New game
  ?                    - Toggle full help
  Q/Ctrl+C             - Quit

The terminal belongs to the game, so logs go to log.file from the config
(discarded when unset).

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(out, cfg, "tui2048")

	// Get terminal size early so the first frame is laid out correctly
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = cfg.Game.Seed
	rc.ShareLink = cfg.Game.ShareLink

	var shared string
	share := func(text string) {
		shared = text
		logger.Info("share", "text", text)
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := tui.Run(ctx, rc, logger, share); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	// Leave the share text in the scrollback after the alt screen closes.
	if shared != "" {
		fmt.Println(shared)
	}
	return nil
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Warn("close log file", "err", err)
		}
	}, nil
}
