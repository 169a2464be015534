package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simplesmart/internal/platform/tui"
)

var flagMenuRecord bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start the title screen. Every entry has a hotkey:

  S  - Start a game
  T  - Tutorial
  H  - Highscores
  O  - Options (player name)
  C  - Credits
  Q  - Quit

Up/Down and Enter work too. From a game or a screen, M/Esc returns here.

Examples:
  simplesmart menu
  simplesmart menu --record
  simplesmart menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMenuRecord, "record", false, "Save each game's best chain as a highscore")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := openDebugLog()
	store := openStore()

	runErr := tui.RunSession(sessionOptions(cfg, store, logger, flagMenuRecord))

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
