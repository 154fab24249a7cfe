package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wesleydude/arcade/internal/core"
	"github.com/wesleydude/arcade/internal/platform/tui"
	"github.com/wesleydude/arcade/internal/registry"
	"github.com/wesleydude/arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Open an interactive menu to pick a game. After a game ends you
return to the menu; Tab opens the best-scores table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		for {
			result, err := tui.RunMenu(store, cfg)
			if err != nil {
				return err
			}
			cfg = result.Config

			switch {
			case result.Quit:
				return nil

			case result.WantsScoreboard:
				quit, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if quit {
					return nil
				}

			case result.GameID != "":
				game, err := registry.Create(result.GameID)
				if err != nil {
					return err
				}

				runCfg := cfg
				runCfg.Seed = flagSeed
				if runCfg.Seed == 0 {
					runCfg.Seed = time.Now().UnixNano()
				}

				if err := tui.Run(game, store, runCfg); err != nil {
					return err
				}
			}
		}
	},
}
