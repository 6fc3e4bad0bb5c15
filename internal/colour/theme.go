package colour

import "strings"

// Theme is the preferred background polarity of a palette.
type Theme string

const (
	// ThemeNeutral keeps the generated background (default).
	ThemeNeutral Theme = "neutral"
	// ThemeLight forces a near-white background.
	ThemeLight Theme = "light"
	// ThemeDark forces a near-black background.
	ThemeDark Theme = "dark"
)

// Themes returns every theme.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeNeutral}
}

// String returns the string representation of a Theme.
func (t Theme) String() string {
	if t == "" {
		return string(ThemeNeutral)
	}
	return string(t)
}

// ParseTheme resolves a theme name, ignoring case and surrounding space.
// An empty string is valid and means neutral.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case "", ThemeNeutral:
		return ThemeNeutral, true
	case ThemeLight, ThemeDark:
		return t, true
	default:
		return t, false
	}
}
