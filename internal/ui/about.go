package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/accordion/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about the application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Accordion", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Collapsible panels that remember how you left them"),
		widget.NewLabel("Version "+Version),
	)
	dialog.ShowCustom("About Accordion", "Close", content, parent)
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	shortcuts := []struct{ action, key string }{
		{"Toggle Panel 1-9", "\u2318 1 \u2026 \u2318 9"},
		{"Toggle Multi-select", "\u2318 M"},
		{"Reset Layout", "\u2318 \u21e7 R"},
	}

	grid := container.NewGridWithColumns(2)
	for _, s := range shortcuts {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
