package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdur667/CS182-Final/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List available agents",
	Long:  `Shows every agent that can be seated in a player's agent field.`,
	Run:   runAgents,
}

func runAgents(cmd *cobra.Command, args []string) {
	agents := agent.List()

	if len(agents) == 0 {
		fmt.Println("No agents available.")
		return
	}

	fmt.Println("Available agents:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range agents {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, a := range agents {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Description)
	}

	fmt.Println()
	fmt.Println("Set players[].agent in the config to seat an agent.")
}
