// Package tui renders an accordion in the terminal with bubbletea.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
)

// Controller is the part of the accordion the terminal view drives.
type Controller interface {
	TogglePanel(index int) error
	ToggleMultiSelect(checked bool) error
	Reset() error
	CurrentDirectives() accordion.Directives
}

// Model is the bubbletea model. Every key that changes state goes through
// the controller; the view is redrawn from the directives it returns.
type Model struct {
	ctrl    Controller
	catalog domain.Catalog
	logger  *slog.Logger
	strict  bool

	directives accordion.Directives
	cursor     int
	status     string
	statusErr  bool
	quitting   bool
}

// NewModel creates a model showing the controller's current state.
func NewModel(ctrl Controller, catalog domain.Catalog, logger *slog.Logger, strict bool) Model {
	return Model{
		ctrl:       ctrl,
		catalog:    catalog,
		logger:     logger,
		strict:     strict,
		directives: ctrl.CurrentDirectives(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.directives.Panels)-1 {
			m.cursor++
		}
	case "enter", " ":
		m = m.run(fmt.Sprintf("toggle panel %d", m.cursor+1), func() error {
			return m.ctrl.TogglePanel(m.cursor)
		})
	case "m":
		multi := !m.directives.MultiSelect
		m = m.run("toggle multi-select", func() error {
			return m.ctrl.ToggleMultiSelect(multi)
		})
	case "r":
		m = m.run("reset", m.ctrl.Reset)
	default:
		// Digits jump straight to a panel and toggle it.
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			index := int(s[0] - '1')
			if index < len(m.directives.Panels) {
				m.cursor = index
				m = m.run(fmt.Sprintf("toggle panel %d", index+1), func() error {
					return m.ctrl.TogglePanel(index)
				})
			}
		}
	}
	return m, nil
}

// run performs an action and refreshes the directives from the controller.
func (m Model) run(action string, fn func() error) Model {
	err := fn()
	m.directives = m.ctrl.CurrentDirectives()
	if err == nil {
		m.status = ""
		m.statusErr = false
		return m
	}

	stateErr := apperrors.ClassifyError(err, m.strict)
	if stateErr.Recovery == apperrors.RecoverIgnore {
		return m
	}
	m.logger.Error(action+" failed", slog.Any("error", err))
	m.status = fmt.Sprintf("%s: %v", stateErr.Title, err)
	m.statusErr = true
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.catalog.Name
	if title == "" {
		title = "accordion"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, p := range m.directives.Panels {
		b.WriteString(m.renderPanel(p))
	}

	b.WriteString("\n")
	if m.directives.MultiSelect {
		b.WriteString(modeOnStyle.Render("[x] multi-select"))
	} else {
		b.WriteString(modeOffStyle.Render("[ ] multi-select"))
	}
	b.WriteString("\n")

	if m.status != "" {
		style := warnStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move • enter toggle • 1-9 jump • m multi-select • r reset • q quit"))
	return b.String()
}

func (m Model) renderPanel(p accordion.PanelDirective) string {
	title := fmt.Sprintf("panel %d", p.Index+1)
	description := ""
	if p.Index < len(m.catalog.Panels) {
		title = m.catalog.Panels[p.Index].Title
		description = m.catalog.Panels[p.Index].Description
	}

	icon := iconExpand
	if p.ShowCollapseIcon() {
		icon = iconCollapse
	}

	mark := " "
	style := headerStyle
	if p.Index == m.cursor {
		mark = cursorMark
		style = cursorHeaderStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%s %s %s", mark, icon, title)))
	b.WriteString("\n")
	if p.ShowDescription() && description != "" {
		b.WriteString(descriptionStyle.Render(description))
		b.WriteString("\n")
	}
	return b.String()
}

// Directives returns what the model last drew.
func (m Model) Directives() accordion.Directives {
	return m.directives
}

// Cursor returns the highlighted panel.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the message shown under the panels.
func (m Model) Status() string {
	return m.status
}
