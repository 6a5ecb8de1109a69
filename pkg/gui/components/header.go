package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/gui/icons"
	"storefront/pkg/gui/theme"
	"storefront/pkg/prefs"
)

// HeaderTitle is the store name shown at the left of the header.
const HeaderTitle = "Your Store"

// NavItem is a header navigation entry.
type NavItem struct {
	Label string
	Route string
}

// Header renders the top bar: store title, navigation and cart trigger.
type Header struct {
	width int
	nav   []NavItem
	cart  *CartSheet
	theme prefs.Theme
}

// NewHeader creates a header whose trigger reflects cart.
func NewHeader(nav []NavItem, cart *CartSheet) *Header {
	return &Header{nav: nav, cart: cart, theme: prefs.DefaultTheme}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTheme records the theme preference shown next to the navigation.
func (h *Header) SetTheme(t prefs.Theme) {
	h.theme = t
}

// View renders the header.
func (h *Header) View(st theme.Styles) string {
	title := st.Title.Render(icons.Store.Get() + " " + HeaderTitle)

	var items []string
	for _, item := range h.nav {
		items = append(items, Button(st, item.Label, ButtonGhost))
	}
	items = append(items, st.Muted.Render(icons.Theme.Get()+" "+h.theme.String()))
	if h.cart != nil {
		items = append(items, h.cart.Trigger(st))
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Center, joinWithSpace(items)...)

	inner := h.width - st.Header.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(title) - lipgloss.Width(nav)
	if gap < 1 {
		gap = 1
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), nav)
	return st.Header.Render(row)
}

func joinWithSpace(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, item)
	}
	return out
}
