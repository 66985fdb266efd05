package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve 2048 to browsers",
	Long: `Start an HTTP server with a browser version of the game.

The page talks to the server over a WebSocket at /ws; every open tab plays
its own game. /healthz reports liveness.

Examples:
  tui2048 web                # Listen on :8080
  tui2048 web --addr :9000   # Listen on port 9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (host:port, default from config)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Web.Address = flagWebAddr
	}

	logger := newLogger(os.Stderr, cfg, "tui2048-web")
	server := web.NewServer(web.Config{
		Address:   cfg.Web.Address,
		Seed:      cfg.Game.Seed,
		ShareLink: cfg.Game.ShareLink,
	}, logger)

	fmt.Printf("Serving 2048 on http://localhost%s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := signalContext()
	defer cancel()
	return server.ListenAndServe(ctx)
}
