package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-gym/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and whether it can be steered by hand gestures.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Gesture", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-------", "-----")

	for _, g := range games {
		gesture := "no"
		if g.Gesture {
			gesture = "yes"
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, gesture, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcadegym play <id>' to play a game.")
}
