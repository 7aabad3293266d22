package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pcnlabs/pcn/internal/store"
	"github.com/pcnlabs/pcn/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("pcn %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	// The dataset lives in memory for the life of the process
	st, err := store.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing dataset: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Seed(); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding dataset: %v\n", err)
		os.Exit(1)
	}

	// Create and run the application
	app := ui.NewApp(st)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
