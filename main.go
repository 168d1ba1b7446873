package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adelv/folio/internal/catalog"
	"github.com/adelv/folio/internal/config"
	"github.com/adelv/folio/internal/content"
	"github.com/adelv/folio/internal/palette"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	body, err := content.Load(cfg.Data.Dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "content error:", err)
		os.Exit(1)
	}

	projects, err := catalog.Load(cfg.Data.Catalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog error:", err)
		os.Exit(1)
	}

	store := palette.NewDiskStore(filepath.Join(cfg.Data.Dir, "state"))
	recents := palette.NewTracker(store)

	m := newModel(cfg, body, projects, recents)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
