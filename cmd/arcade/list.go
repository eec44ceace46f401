package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the registered games with play counts and best scores.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional; without them the columns stay blank
	stats, err := loadStats(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read game stats: %v\n", err)
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %6s  %8s\n", maxIDLen, "ID", maxTitleLen, "Title", "Plays", "Best")
	fmt.Printf("  %-*s  %-*s  %6s  %8s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "----")

	// Print games
	for _, g := range games {
		plays, best := "-", "-"
		if s, ok := stats[g.ID]; ok {
			plays = fmt.Sprint(s.GamesCount)
			best = fmt.Sprint(s.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %6s  %8s\n", maxIDLen, g.ID, maxTitleLen, g.Title, plays, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// loadStats reads per-game stats from the scores database at path.
func loadStats(path string) (map[string]*storage.GameStats, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.GetAllGamesStats()
}
