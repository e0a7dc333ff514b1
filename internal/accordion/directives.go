package accordion

import "github.com/shhac/accordion/internal/domain"

// Visibility is the rendered state of one panel.
type Visibility int

const (
	Closed Visibility = iota // description hidden, expand icon shown
	Open                     // description shown, collapse icon shown
)

func (v Visibility) String() string {
	if v == Open {
		return "open"
	}
	return "closed"
}

// PanelDirective tells a renderer how to draw one panel.
type PanelDirective struct {
	Index int  `json:"index"`
	Open  bool `json:"open"`
}

// Visibility returns Open or Closed.
func (d PanelDirective) Visibility() Visibility {
	if d.Open {
		return Open
	}
	return Closed
}

func (d PanelDirective) ShowDescription() bool  { return d.Open }
func (d PanelDirective) ShowCollapseIcon() bool { return d.Open }
func (d PanelDirective) ShowExpandIcon() bool   { return !d.Open }

// Directives is everything a renderer needs to reconcile its visuals.
type Directives struct {
	Panels      []PanelDirective `json:"panels"`
	MultiSelect bool             `json:"multiSelect"`
}

// Renderer applies directives to some concrete surface (fyne widgets,
// a terminal view, a test recorder). Apply must draw every panel.
type Renderer interface {
	Apply(Directives)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Directives)

func (f RendererFunc) Apply(d Directives) { f(d) }

// Sync derives the directives for state. It is a pure function.
func Sync(state domain.AccordionState) Directives {
	panels := make([]PanelDirective, len(state.Panels))
	for i, p := range state.Panels {
		panels[i] = PanelDirective{Index: i, Open: p.IsOpen}
	}
	return Directives{Panels: panels, MultiSelect: state.MultiSelect}
}
