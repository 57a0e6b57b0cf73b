package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available toys",
	Long:  `Shows every registered toy with its key bindings.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No toys available.")
		return
	}

	fmt.Println("Available toys:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		for _, c := range g.Controls {
			fmt.Printf("  %-*s    %-8s %s\n", maxIDLen, "", c.Key, c.Help)
		}
	}

	fmt.Println()
	fmt.Println("Run 'bounce play <id>' to play a toy.")
}
