package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/accordion/internal/model"
)

// StatusBar displays the last status message with a shape-changing icon indicator.
// Each level uses a distinct icon shape for accessibility (not color-only):
//   - Info: info icon (i)
//   - Warning: warning icon (triangle)
//   - Error: error icon (X shape)
type StatusBar struct {
	widget.BaseWidget

	state       *model.StatusState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a new status bar bound to the given status state.
func NewStatusBar(state *model.StatusState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.InfoIcon()),
	}
	s.ExtendBaseWidget(s)

	// Listen to state changes
	state.Level.AddListener(binding.NewDataListener(s.updateStatus))
	state.Message.AddListener(binding.NewDataListener(s.updateStatus))

	s.updateStatus()

	return s
}

// updateStatus refreshes the status bar based on current state.
func (s *StatusBar) updateStatus() {
	level, _ := s.state.Level.Get()
	message, _ := s.state.Message.Get()

	switch level {
	case "warning":
		s.indicator.SetResource(theme.WarningIcon())
	case "error":
		s.indicator.SetResource(theme.ErrorIcon())
	default:
		s.indicator.SetResource(theme.InfoIcon())
	}

	if message == "" {
		message = "Ready"
	}
	s.statusLabel.SetText(message)
}

// Text returns the message currently displayed.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	statusContainer := container.NewHBox(
		s.indicator,
		s.statusLabel,
	)

	return widget.NewSimpleRenderer(statusContainer)
}

// SetStatus is a convenience method to update the status state.
// Level should be one of: "info", "warning", "error"
func (s *StatusBar) SetStatus(level string, message string) {
	s.state.Set(level, message)
}
