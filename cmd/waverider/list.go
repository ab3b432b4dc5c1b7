package main

import (
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/wave-rider/internal/games/waverider" // Registers the modes
	"github.com/vovakirdan/wave-rider/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available modes",
	Long:  `Shows every registered Wave Rider mode and the id its scores are stored under.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-8s  %-*s  %s\n", "Name", idWidth, "ID", "Title")
	fmt.Printf("  %-8s  %-*s  %s\n", "----", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-8s  %-*s  %s\n", g.Alias, idWidth, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'waverider play <name>' to play a mode.")
}
