package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simplesmart/internal/games/smart"
	"github.com/vovakirdan/simplesmart/internal/platform/tui"
	"github.com/vovakirdan/simplesmart/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the highscore list",
	Long: fmt.Sprintf(`Display the top %d highscores and the current player name.

Examples:
  simplesmart scores
  simplesmart scores --clear`, storage.MaxHighscores),
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all highscores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearHighscores(smart.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Highscores cleared.")
		return
	}

	scores, err := store.Highscores(smart.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if name, err := store.Name(); err == nil {
		fmt.Printf("Player: %s\n\n", name)
	}
	fmt.Println("Highscores - Simple Smart")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println(tui.EmptyHighscores)
		return
	}

	fmt.Printf("  %-4s  %-*s  %-5s  %-5s  %s\n", "Rank", storage.MaxNameLength, "Name", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-*s  %-5s  %-5s  %s\n", "----", storage.MaxNameLength, "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-5d  %-5d  %s\n", i+1, storage.MaxNameLength, entry.Name, entry.Score, entry.Level, dateStr)
	}

	if stats, err := store.GameStats(smart.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", stats.Best)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last recorded: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
