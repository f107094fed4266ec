package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalplan/savings-planner/internal/tui"
)

func main() {
	planPath := ""
	if len(os.Args) > 1 {
		planPath = os.Args[1]
	} else {
		fmt.Println("Usage: goalplan-tui <plan-file>")
		os.Exit(1)
	}

	if _, err := os.Stat(planPath); os.IsNotExist(err) {
		fmt.Printf("Error: Plan file not found: %s\n", planPath)
		os.Exit(1)
	}

	model := tui.NewModel(planPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
