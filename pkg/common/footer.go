package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/gui/theme"
)

// Footer manages the bottom footer bar with keyboard shortcuts
type Footer struct {
	width           int
	height          int
	focused         string
	shortcutOverlay *ShortcutOverlay
}

var footerStyle = lipgloss.NewStyle().Padding(0, 1)

// NewFooter creates a new footer component
func NewFooter() *Footer {
	return &Footer{
		height:  1,
		focused: FocusProducts,
	}
}

// SetShortcutOverlay sets the shortcut overlay for the footer
func (f *Footer) SetShortcutOverlay(overlay *ShortcutOverlay) {
	f.shortcutOverlay = overlay
}

// SetSize updates the footer dimensions
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetFocus updates which region is focused
func (f *Footer) SetFocus(focused string) {
	f.focused = focused
}

// GetShortcuts returns the current shortcuts to display
func (f *Footer) GetShortcuts() []Shortcut {
	if f.shortcutOverlay != nil {
		f.shortcutOverlay.SetFocus(f.focused)
		return f.shortcutOverlay.FormatShortcuts()
	}
	return []Shortcut{}
}

// View renders the footer
func (f *Footer) View(st theme.Styles) string {
	if f.width == 0 {
		return ""
	}

	shortcuts := f.GetShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	keyStyle := st.Description.Bold(true)
	highlightKey := keyStyle.Foreground(lipgloss.Color(st.Palette.TextPrimary))
	descStyle := st.Description
	bullet := st.Separator.Render(" • ")
	pipe := st.Separator.Render(" │ ")

	var local, global []string
	for _, shortcut := range shortcuts {
		if shortcut.IsGlobal {
			global = append(global, keyStyle.Render(shortcut.Key)+" "+descStyle.Render(shortcut.Description))
			continue
		}
		local = append(local, highlightKey.Render(shortcut.Key)+" "+descStyle.Render(shortcut.Description))
	}

	content := strings.Join(local, bullet)
	if len(local) > 0 && len(global) > 0 {
		content += pipe
	}
	content += strings.Join(global, bullet)

	// Center the footer content
	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		footerStyle.Render(content),
	)
}
