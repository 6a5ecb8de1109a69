// Package theme maps the theme preference to concrete colors and styles.
package theme

import (
	"github.com/muesli/termenv"

	"storefront/pkg/prefs"
)

// Palette defines all colors used throughout the application with semantic naming.
type Palette struct {
	Name string

	// Brand colors
	Brand string // storefront accent for titles and primary buttons

	// Text colors
	TextPrimary     string // focused/active text
	TextDescription string // descriptions and help text
	TextMuted       string // very subtle text like categories

	// Border colors
	BorderActive string
	BorderMuted  string

	// Status/semantic colors
	SuccessStatus string // in stock
	WarningStatus string // low stock
	ErrorStatus   string // out of stock
	InfoStatus    string // badges, links

	// UI colors
	HighlightBg    string // button and selection backgrounds
	SeparatorColor string
	Price          string
	OnBrand        string // text drawn on Brand backgrounds
}

// Dark is the palette for dark terminal backgrounds.
var Dark = Palette{
	Name:            "dark",
	Brand:           "#9d87ae",
	TextPrimary:     "#ffffff",
	TextDescription: "#c9c9c9",
	TextMuted:       "#7a7a7a",
	BorderActive:    "#c9c9c9",
	BorderMuted:     "#7a7a7a",
	SuccessStatus:   "#50fa7b",
	WarningStatus:   "#ffb86c",
	ErrorStatus:     "#ff5555",
	InfoStatus:      "#8be9fd",
	HighlightBg:     "#282a36",
	SeparatorColor:  "#4a4a4a",
	Price:           "#f1fa8c",
	OnBrand:         "#1a1a1a",
}

// Light is the palette for light terminal backgrounds.
var Light = Palette{
	Name:            "light",
	Brand:           "#6c4aa6",
	TextPrimary:     "#1f1f1f",
	TextDescription: "#434343",
	TextMuted:       "#777777",
	BorderActive:    "#434343",
	BorderMuted:     "#c9c9c1",
	SuccessStatus:   "#15803d",
	WarningStatus:   "#b45309",
	ErrorStatus:     "#b91c1c",
	InfoStatus:      "#0e7490",
	HighlightBg:     "#eeeeee",
	SeparatorColor:  "#d0d0d0",
	Price:           "#7c4a03",
	OnBrand:         "#ffffff",
}

// BackgroundDetector reports whether the terminal background is dark.
type BackgroundDetector func() bool

// DetectDarkBackground queries the terminal through termenv.
func DetectDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// Resolve returns the palette for t. The system theme asks detect for the
// terminal background; a nil detector assumes dark.
func Resolve(t prefs.Theme, detect BackgroundDetector) Palette {
	switch t {
	case prefs.ThemeLight:
		return Light
	case prefs.ThemeDark:
		return Dark
	}
	if detect == nil || detect() {
		return Dark
	}
	return Light
}
