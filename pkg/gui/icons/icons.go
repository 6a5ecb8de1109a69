// Package icons provides consistent icon representations using Nerd Fonts
// for the storefront interface.
package icons

import (
	"os"
	"strings"
	"sync"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

var (
	Store = Icon{
		NerdFont: "\uf54e", // Nerd Font store icon
		Fallback: "◆",
	}

	Cart = Icon{
		NerdFont: "\uf07a", // Nerd Font shopping cart
		Fallback: "🛒",
	}

	Menu = Icon{
		NerdFont: "\uf0c9", // Nerd Font bars
		Fallback: "≡",
	}

	Tag = Icon{
		NerdFont: "\uf02b", // Nerd Font tag
		Fallback: "#",
	}

	Star = Icon{
		NerdFont: "\uf005", // Nerd Font star
		Fallback: "★",
	}

	Selected = Icon{
		NerdFont: "\ue0b0", // Nerd Font right arrow
		Fallback: "▶",
	}

	Theme = Icon{
		NerdFont: "\uf042", // Nerd Font adjust (half circle)
		Fallback: "◐",
	}
)

var (
	nerdMu       sync.Mutex
	useNerdFonts *bool
)

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	nerdMu.Lock()
	defer nerdMu.Unlock()

	if useNerdFonts != nil {
		return *useNerdFonts
	}

	if v := strings.ToLower(os.Getenv("STOREFRONT_NERD_FONTS")); v != "" {
		result := v == "1" || v == "true" || v == "yes"
		useNerdFonts = &result
		return result
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	// Common terminals/configs that often use Nerd Fonts
	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
		"xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	nerdMu.Lock()
	useNerdFonts = &enabled
	nerdMu.Unlock()
}
