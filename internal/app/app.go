package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/atomicstack/glossary/internal/catalog"
	"github.com/atomicstack/glossary/internal/theme"
	"github.com/atomicstack/glossary/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Source     string
	Timeout    time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Theme      theme.Mode
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := &http.Client{Timeout: cfg.Timeout}
	src, err := catalog.NewSource(cfg.Source, client)
	if err != nil {
		return fmt.Errorf("resolve catalog source: %w", err)
	}
	model := ui.NewModel(ui.Options{
		Source:     src,
		Timeout:    cfg.Timeout,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Theme:      cfg.Theme,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
