package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simplesmart/internal/games/smart"
	"github.com/vovakirdan/simplesmart/internal/platform/tui"
	"github.com/vovakirdan/simplesmart/internal/registry"
)

var (
	flagRecord bool
	flagWidth  int
	flagHeight int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one board",
	Long: `Generate a board and play it directly, without the title screen.

Controls:
  WASD/Arrows/hjkl  - Move the cursor
  ;/Enter/Space     - Follow the chain under the cursor
  P                 - Pause
  Q/Esc/Ctrl+C      - Quit

Colored pieces can't start a chain. Scores are per chain; with --record the
best chain of the session is saved to the highscore list on quit.

Examples:
  simplesmart play
  simplesmart play --seed 7
  simplesmart play --width 12 --height 9 --record
  simplesmart play --debug-log ./chains.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session's best chain as a highscore")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagWidth > 0 {
		cfg.Matrix.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Matrix.Height = flagHeight
	}

	game, err := registry.Create(smart.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openDebugLog()
	store := openStore()

	runErr := tui.Run(game, sessionOptions(cfg, store, logger, flagRecord))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
