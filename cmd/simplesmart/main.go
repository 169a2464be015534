// simplesmart is a terminal arrow-chain puzzle.
//
// Usage:
//
//	simplesmart play           - Play one board
//	simplesmart menu           - Title screen with tutorial, options and highscores
//	simplesmart serve          - Start SSH server for remote play
//	simplesmart scores         - Show the highscore list
//	simplesmart config init    - Write the default config file
//	simplesmart config show    - Print the effective config
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible board
//	--db <path>         - Set database path (default: ~/.simplesmart/scores.db)
//	--config <path>     - Use a specific config file
//	--debug-log <path>  - Write walked chains to a debug log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/simplesmart/internal/games/smart"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagDebugLog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simplesmart",
	Short: "Simple Smart - follow the arrows off the board",
	Long: `Simple Smart is a terminal puzzle. Every cell holds an arrow; pick a
plain piece and follow the chain it starts until it leaves the board.
Each step scores a point.

Available commands:
  play     - Play one board directly
  menu     - Title screen with tutorial, credits, options and highscores
  serve    - Start SSH server for remote play
  scores   - View the highscore list
  config   - Write or show the configuration

Examples:
  simplesmart play
  simplesmart play --seed 42 --width 10 --height 8
  simplesmart menu --record
  simplesmart serve --ssh :2222
  simplesmart config init`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simplesmart/scores.db", "Path to profile and scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug-log", "", "Write chain steps to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
