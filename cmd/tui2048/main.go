// tui2048 is the 2048 sliding-tile game for the terminal, SSH and the browser.
//
// Usage:
//
//	tui2048 play             - Play in this terminal
//	tui2048 serve            - Start SSH server for remote play
//	tui2048 web              - Serve the game to browsers
//	tui2048 config           - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Path to a YAML config file
//	--seed <value>      - Set RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal, over SSH and in the browser",
	Long: `tui2048 is the 2048 sliding-tile puzzle. Slide the tiles with the arrow
keys; equal tiles merge and add their value to your score. The game ends
when no move is left.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers over HTTP and WebSocket
  config   - Print the default configuration

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 serve --ssh :2222
  tui2048 web --addr :9000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.tui2048/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}
