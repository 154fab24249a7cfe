package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wesleydude/arcade/internal/core"
	"github.com/wesleydude/arcade/internal/games/cooking"
	"github.com/wesleydude/arcade/internal/games/shop"
	"github.com/wesleydude/arcade/internal/games/snake"
	"github.com/wesleydude/arcade/internal/platform/tui"
	"github.com/wesleydude/arcade/internal/registry"
	"github.com/wesleydude/arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Play a game in the terminal.

Controls:
  WASD / arrows  - Move / navigate
  Enter          - Start
  Space          - Serve (Cooking Master / Shop Master)
  1-6            - Place ingredient (Cooking Master)
  B              - Buy stock or upgrade (Shop Master)
  Tab            - Switch panel (Shop Master)
  P              - Pause
  R              - Restart (after game over)
  Q              - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := args[0]

		if flagMode == "extended" && gameID == "cooking" {
			gameID = "cooking_extended"
		}

		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Unknown game: %s\n\n", gameID)
			fmt.Fprintln(os.Stderr, "Available games:")
			for _, g := range registry.List() {
				fmt.Fprintf(os.Stderr, "  %s\n", g.ID)
			}
			return fmt.Errorf("game not found")
		}

		applyGameFlags(gameID)

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}

		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			// Play without score persistence
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		return tui.Run(game, store, cfg)
	},
}

// applyGameFlags hands the config path and difficulty preset to the
// selected game's package before it is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case "cooking", "cooking_extended":
		cooking.SetConfigPath(flagConfig)
		cooking.SetDifficultyPreset(flagDifficulty)
	case "shop":
		shop.SetConfigPath(flagConfig)
		shop.SetDifficultyPreset(flagDifficulty)
	}
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config file (YAML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, or hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode (cooking only): classic or extended")
}
