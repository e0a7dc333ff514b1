package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemePreferenceKey is the key used to store theme preference
const ThemePreferenceKey = "accordionTheme"

// Theme modes accepted by ApplyTheme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// forcedVariant wraps a theme to force a specific variant (light/dark)
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme based on the mode.
// Unknown modes fall back to the system theme.
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case ThemeDark:
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantDark,
		})
	case ThemeLight:
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantLight,
		})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// LoadThemePreference applies override if set, otherwise the saved preference.
func LoadThemePreference(a fyne.App, override string) string {
	mode := override
	if mode == "" {
		mode = a.Preferences().StringWithFallback(ThemePreferenceKey, ThemeSystem)
	}
	ApplyTheme(a, mode)
	return mode
}

// SaveThemePreference saves and applies the theme preference
func SaveThemePreference(a fyne.App, mode string) {
	a.Preferences().SetString(ThemePreferenceKey, mode)
	ApplyTheme(a, mode)
}

// ThemeMenu builds a menu for switching themes.
func ThemeMenu(a fyne.App) *fyne.Menu {
	item := func(label, mode string) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() { SaveThemePreference(a, mode) })
	}
	return fyne.NewMenu("Theme",
		item("System Default", ThemeSystem),
		item("Light", ThemeLight),
		item("Dark", ThemeDark),
	)
}
