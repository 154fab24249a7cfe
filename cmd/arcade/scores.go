package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleydude/arcade/internal/registry"
	"github.com/wesleydude/arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best scores",
	Long: `Show the best score recorded for each game, or for a single game
when one is named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open scores database: %w", err)
		}
		defer store.Close()

		if len(args) == 1 {
			return printGameBest(store, args[0])
		}
		return printAllBest(store)
	},
}

func printGameBest(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Unknown game: %s\n", gameID)
		return fmt.Errorf("game not found")
	}

	best, ok, err := store.Best(gameID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No score recorded for %s yet.\n", gameID)
		return nil
	}

	fmt.Printf("Best score for %s: %d\n", gameID, best)
	return nil
}

func printAllBest(store *storage.Store) error {
	entries, err := store.AllBest()
	if err != nil {
		return err
	}

	best := make(map[string]storage.BestEntry, len(entries))
	for _, e := range entries {
		best[e.GameID] = e
	}

	games := registry.List()
	maxTitleLen := 0
	for _, g := range games {
		if len(g.Title) > maxTitleLen {
			maxTitleLen = len(g.Title)
		}
	}

	fmt.Println("Best scores:")
	fmt.Println()
	for _, g := range games {
		if e, ok := best[g.ID]; ok {
			fmt.Printf("  %-*s  %d\n", maxTitleLen, g.Title, e.Score)
		} else {
			fmt.Printf("  %-*s  -\n", maxTitleLen, g.Title)
		}
	}
	return nil
}
