package model

import (
	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/domain"
)

// ApplicationState represents the centralized UI state with Fyne data bindings.
// Widgets bind to these values; the accordion controller feeds them through Apply.
// Only the GUI creates one: setting a binding needs a running fyne app.
type ApplicationState struct {
	// Catalog being displayed
	Title  binding.String
	Panels []*PanelState

	// Mode control
	MultiSelect binding.Bool

	Status *StatusState
}

// PanelState is the bound view of one panel.
type PanelState struct {
	Title       binding.String
	Description binding.String
	Open        binding.Bool
}

// NewApplicationState creates bindings for every panel in catalog, all closed.
func NewApplicationState(catalog domain.Catalog) *ApplicationState {
	title := binding.NewString()
	_ = title.Set(catalog.Name)

	panels := make([]*PanelState, len(catalog.Panels))
	for i, p := range catalog.Panels {
		panels[i] = NewPanelState(p)
	}

	return &ApplicationState{
		Title:       title,
		Panels:      panels,
		MultiSelect: binding.NewBool(),
		Status:      NewStatusState(),
	}
}

// NewPanelState creates the bindings for a single panel.
func NewPanelState(p domain.Panel) *PanelState {
	title := binding.NewString()
	_ = title.Set(p.Title)
	description := binding.NewString()
	_ = description.Set(p.Description)

	return &PanelState{
		Title:       title,
		Description: description,
		Open:        binding.NewBool(),
	}
}

// Apply implements accordion.Renderer by copying directives into the bindings.
// Directives for panels beyond the bound catalog are ignored.
func (s *ApplicationState) Apply(d accordion.Directives) {
	for _, p := range d.Panels {
		if p.Index < 0 || p.Index >= len(s.Panels) {
			continue
		}
		_ = s.Panels[p.Index].Open.Set(p.Open)
	}
	_ = s.MultiSelect.Set(d.MultiSelect)
}

// StatusState represents the message shown in the status bar.
// Levels: "info", "warning", "error"
type StatusState struct {
	Level   binding.String
	Message binding.String
}

// NewStatusState creates a new StatusState with initialized bindings.
func NewStatusState() *StatusState {
	level := binding.NewString()
	_ = level.Set("info") // Default to info

	return &StatusState{
		Level:   level,
		Message: binding.NewString(),
	}
}

// Set updates level and message together.
func (s *StatusState) Set(level, message string) {
	_ = s.Level.Set(level)
	_ = s.Message.Set(message)
}

var _ accordion.Renderer = (*ApplicationState)(nil)
