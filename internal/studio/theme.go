package studio

import "strings"

// Theme is the page color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Themes lists the selectable themes in display order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// ParseTheme maps user input to a Theme. Unknown values yield ThemeSystem.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeSystem
	}
}
