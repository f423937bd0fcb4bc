package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"edusync/internal/adapters/docstore"
	"edusync/internal/adapters/errlog"
	"edusync/internal/adapters/tui"
	"edusync/internal/application"
	"edusync/internal/config"
)

func main() {
	store := docstore.NewStore()
	if err := store.Open(config.StorePath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	engine := application.NewEngine(store, errlog.NewSink(store))

	app := tui.NewApp(engine)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
