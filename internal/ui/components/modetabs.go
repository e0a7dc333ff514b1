package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// ModeToggle is the single/multi-select control shown above the panels.
// It uses a horizontal RadioGroup so the mode reads as a setting rather than
// as another panel.
type ModeToggle struct {
	widget.BaseWidget

	modeSelect *widget.RadioGroup

	// updating suppresses the callback while SetMultiSelect mirrors state.
	updating bool

	onModeChange func(multiSelect bool)
}

const (
	modeSingle = "Single"
	modeMulti  = "Multiple"
)

// NewModeToggle creates a toggle showing single-select.
func NewModeToggle() *ModeToggle {
	m := &ModeToggle{}

	m.modeSelect = widget.NewRadioGroup([]string{modeSingle, modeMulti}, func(selected string) {
		if m.updating || selected == "" {
			return
		}
		if m.onModeChange != nil {
			m.onModeChange(selected == modeMulti)
		}
	})
	m.modeSelect.Horizontal = true
	m.modeSelect.Required = true
	m.modeSelect.Selected = modeSingle

	m.ExtendBaseWidget(m)
	return m
}

// BindMultiSelect makes the toggle mirror multi.
func (m *ModeToggle) BindMultiSelect(multi binding.Bool) {
	multi.AddListener(binding.NewDataListener(func() {
		if v, err := multi.Get(); err == nil {
			m.SetMultiSelect(v)
		}
	}))
}

// SetOnModeChange sets the callback invoked when the user picks a mode.
func (m *ModeToggle) SetOnModeChange(fn func(multiSelect bool)) {
	m.onModeChange = fn
}

// SetMultiSelect mirrors the mode without invoking the callback.
// Does nothing if already showing the requested mode.
func (m *ModeToggle) SetMultiSelect(multi bool) {
	if m.MultiSelect() == multi {
		return
	}

	m.updating = true
	defer func() { m.updating = false }()

	if multi {
		m.modeSelect.SetSelected(modeMulti)
	} else {
		m.modeSelect.SetSelected(modeSingle)
	}
}

// MultiSelect reports the mode currently shown.
func (m *ModeToggle) MultiSelect() bool {
	return m.modeSelect.Selected == modeMulti
}

// Select simulates the user picking a mode.
func (m *ModeToggle) Select(multi bool) {
	if multi {
		m.modeSelect.SetSelected(modeMulti)
	} else {
		m.modeSelect.SetSelected(modeSingle)
	}
}

// CreateRenderer implements fyne.Widget.
func (m *ModeToggle) CreateRenderer() fyne.WidgetRenderer {
	label := widget.NewLabelWithStyle("Open panels:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return widget.NewSimpleRenderer(container.NewHBox(label, m.modeSelect))
}
