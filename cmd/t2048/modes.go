package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all available modes",
	Long:  `Shows every registered 2048 mode and the campaign levels.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Aliases")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "-------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, m.ID, m.Title, strings.Join(m.Aliases, ", "))
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	targets := t2048.LevelTargets()
	for i, name := range t2048.LevelNames() {
		fmt.Printf("  %2d. %-20s %d\n", i+1, name, targets[i])
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <mode>' to play.")
}
