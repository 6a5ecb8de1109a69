package overlays

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/common"
	"storefront/pkg/config"
	"storefront/pkg/gui/theme"
)

// HelpDialog represents a help overlay showing all shortcuts
type HelpDialog struct {
	keyMap *common.GlobalKeyMap
	width  int
	height int
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog(keyMap *common.GlobalKeyMap) *HelpDialog {
	return &HelpDialog{keyMap: keyMap}
}

// SetSize updates the dialog dimensions
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help dialog content
func (h *HelpDialog) View(st theme.Styles) string {
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.Palette.BorderMuted)).
		Padding(1, 2).
		MaxWidth(65)
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(st.Palette.InfoStatus)).
		MarginTop(1)
	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(st.Palette.Price))
	footerStyle := st.Muted.Italic(true).MarginTop(1)

	var content []string
	content = append(content, st.Title.Render(config.App.Name+" - Keybindings"))

	shortcuts := common.AllShortcuts(h.keyMap)
	for _, section := range common.HelpSectionOrder {
		items, ok := shortcuts[section]
		if !ok {
			continue
		}
		content = append(content, sectionStyle.Render(section))
		for _, shortcut := range items {
			line := "  " + keyStyle.Render(padRight(shortcut.Key, 12)) +
				st.Description.Render(shortcut.Description)
			content = append(content, line)
		}
	}

	content = append(content, footerStyle.Render("Press any key to close"))

	dialog := overlayStyle.Render(strings.Join(content, "\n"))
	if h.width == 0 || h.height == 0 {
		return dialog
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, dialog)
}

// padRight pads a string to the right with spaces
func padRight(s string, length int) string {
	w := lipgloss.Width(s)
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}
