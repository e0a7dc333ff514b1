package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// panelKeys maps Cmd+1..Cmd+9 to the first nine panels.
var panelKeys = []fyne.KeyName{
	fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5,
	fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9,
}

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+1..9: Toggle panel
	for i, key := range panelKeys {
		if i >= len(w.view.Panels()) {
			break
		}
		index := i
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
		}, func(shortcut fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: toggle panel")
			w.view.TogglePanel(index)
		})
	}

	// Cmd+M: Toggle multi-select
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyM,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: toggle multi-select")
		w.view.ToggleMode()
	})

	// Cmd+Shift+R: Reset layout
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierSuper | fyne.KeyModifierShift,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: reset layout")
		w.handleReset()
	})

	w.logger.Info("keyboard shortcuts configured")
}
