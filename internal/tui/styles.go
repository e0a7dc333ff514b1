package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMauve).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorText)

	cursorHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorLavender)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				PaddingLeft(4)

	modeOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	modeOffStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSurface1).
			MarginTop(1)
)

const (
	iconExpand   = "▸"
	iconCollapse = "▾"
	cursorMark   = "›"
)
