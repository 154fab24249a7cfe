package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleydude/arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()

		if len(games) == 0 {
			fmt.Println("No games registered.")
			return
		}

		fmt.Println("Available games:")
		fmt.Println()

		maxIDLen := 0
		for _, g := range games {
			if len(g.ID) > maxIDLen {
				maxIDLen = len(g.ID)
			}
		}

		for _, g := range games {
			fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		}

		fmt.Println()
		fmt.Println("Play with: arcade play <game>")
	},
}
