package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/accordion/internal/domain"
)

// Start runs the terminal UI until the user quits.
func Start(ctrl Controller, catalog domain.Catalog, logger *slog.Logger, strict bool) error {
	p := tea.NewProgram(NewModel(ctrl, catalog, logger, strict))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
