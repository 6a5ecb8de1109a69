package overlays

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/common"
	"storefront/pkg/gui/theme"
)

func TestHelpDialogListsSections(t *testing.T) {
	h := NewHelpDialog(common.NewGlobalKeyMap())
	view := h.View(theme.NewStyles(theme.Light))

	for _, want := range append([]string{"Keybindings", "cycle theme", "toggle sidebar"}, common.HelpSectionOrder...) {
		if !strings.Contains(view, want) {
			t.Fatalf("help dialog missing %q:\n%s", want, view)
		}
	}
}

func TestHelpDialogCentersInWindow(t *testing.T) {
	h := NewHelpDialog(common.NewGlobalKeyMap())
	h.SetSize(120, 50)

	view := h.View(theme.NewStyles(theme.Dark))
	if w, ht := lipgloss.Width(view), lipgloss.Height(view); w != 120 || ht != 50 {
		t.Fatalf("placed dialog = %dx%d want 120x50", w, ht)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("↑/k", 5); lipgloss.Width(got) != 5 {
		t.Fatalf("padRight width = %d want 5", lipgloss.Width(got))
	}
	if got := padRight("toolong", 3); got != "toolong" {
		t.Fatalf("padRight truncated: %q", got)
	}
}
