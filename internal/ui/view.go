package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/model"
	"github.com/shhac/accordion/internal/ui/components"
)

// Controller is the part of the accordion the view drives.
type Controller interface {
	TogglePanel(index int) error
	ToggleMultiSelect(checked bool) error
	Reset() error
	Attach(r accordion.Renderer)
}

// AccordionView renders the panels and the mode toggle. Its widgets are
// bound to the ApplicationState, which the controller renders into; the
// widgets never change on their own.
type AccordionView struct {
	widget.BaseWidget

	ctrl   Controller
	state  *model.ApplicationState
	logger *slog.Logger

	panels []*components.CollapsiblePanel
	mode   *components.ModeToggle

	onError func(error)
}

// NewAccordionView creates one collapsible panel per bound panel in state.
// Call Bind to connect it to a controller.
func NewAccordionView(state *model.ApplicationState, logger *slog.Logger) *AccordionView {
	v := &AccordionView{
		state:  state,
		logger: logger,
		mode:   components.NewModeToggle(),
	}

	v.panels = make([]*components.CollapsiblePanel, len(state.Panels))
	for i, p := range state.Panels {
		panel := components.NewCollapsiblePanel(i, p.Title, p.Description, p.Open)
		panel.OnTapped = v.handleTap
		v.panels[i] = panel
	}
	v.mode.BindMultiSelect(state.MultiSelect)
	v.mode.SetOnModeChange(v.handleModeChange)

	v.ExtendBaseWidget(v)
	return v
}

// Bind renders ctrl into the view's state; the current state is drawn immediately.
func (v *AccordionView) Bind(ctrl Controller) {
	v.ctrl = ctrl
	ctrl.Attach(v.state)
}

// SetOnError sets the callback for errors that reach the user.
func (v *AccordionView) SetOnError(fn func(error)) {
	v.onError = fn
}

// TogglePanel behaves like a click on panel index's header.
func (v *AccordionView) TogglePanel(index int) {
	v.handleTap(index)
}

// ToggleMode flips between single- and multi-select.
func (v *AccordionView) ToggleMode() {
	v.mode.Select(!v.mode.MultiSelect())
}

func (v *AccordionView) handleTap(index int) {
	if v.ctrl == nil {
		return
	}
	if err := v.ctrl.TogglePanel(index); err != nil {
		v.fail("toggle panel", err)
	}
}

func (v *AccordionView) handleModeChange(multi bool) {
	if v.ctrl == nil {
		return
	}
	if err := v.ctrl.ToggleMultiSelect(multi); err != nil {
		// The radio group already shows the new mode but the binding never
		// changed, so put it back by hand.
		committed, _ := v.state.MultiSelect.Get()
		v.mode.SetMultiSelect(committed)
		v.fail("toggle multi-select", err)
	}
}

func (v *AccordionView) fail(action string, err error) {
	if accordion.IsBusy(err) {
		v.logger.Debug("action dropped while busy", slog.String("action", action))
		return
	}
	v.logger.Error(action+" failed", slog.Any("error", err))
	if v.onError != nil {
		v.onError(err)
	}
}

// Panels returns the panel widgets in order.
func (v *AccordionView) Panels() []*components.CollapsiblePanel {
	return v.panels
}

// ModeToggle returns the mode control.
func (v *AccordionView) ModeToggle() *components.ModeToggle {
	return v.mode
}

// CreateRenderer implements fyne.Widget.
func (v *AccordionView) CreateRenderer() fyne.WidgetRenderer {
	list := container.NewVBox()
	for i, p := range v.panels {
		if i > 0 {
			list.Add(widget.NewSeparator())
		}
		list.Add(p)
	}
	content := container.NewBorder(v.mode, nil, nil, nil, container.NewVScroll(list))
	return widget.NewSimpleRenderer(content)
}
