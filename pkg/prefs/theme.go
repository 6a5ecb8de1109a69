package prefs

import (
	"fmt"
	"strings"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme follows the terminal's own background.
const DefaultTheme = ThemeSystem

var themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// Themes returns every valid theme in cycle order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// Valid reports whether t is one of the enumerated themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Next returns the theme after t in cycle order. Invalid themes cycle to
// the first theme.
func (t Theme) Next() Theme {
	for i, v := range themes {
		if v == t {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme converts user input into a Theme. Matching ignores case and
// surrounding space; "system-default" is accepted as an alias of system.
func ParseTheme(s string) (Theme, error) {
	v := Theme(strings.ToLower(strings.TrimSpace(s)))
	if v == "system-default" {
		v = ThemeSystem
	}
	if !v.Valid() {
		return "", fmt.Errorf("%w: theme %q (want light, dark or system)", ErrInvalidArgument, s)
	}
	return v, nil
}
