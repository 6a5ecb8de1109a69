package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/format"
	"storefront/pkg/gui/icons"
	"storefront/pkg/gui/theme"
	"storefront/pkg/types"
)

// CartSheetTitle heads the open cart sheet.
const CartSheetTitle = "Shopping Cart"

// CartSheet is the side sheet listing cart items, opened from the header
// trigger. It displays items only; it never changes them.
type CartSheet struct {
	open   bool
	items  []types.CartItem
	width  int
	height int
}

// NewCartSheet returns a closed, empty cart sheet.
func NewCartSheet() *CartSheet {
	return &CartSheet{}
}

// Toggle opens a closed sheet and closes an open one.
func (c *CartSheet) Toggle() {
	c.open = !c.open
}

// Open shows the sheet.
func (c *CartSheet) Open() { c.open = true }

// Close hides the sheet.
func (c *CartSheet) Close() { c.open = false }

// IsOpen reports whether the sheet is shown.
func (c *CartSheet) IsOpen() bool { return c.open }

// SetItems replaces the items displayed.
func (c *CartSheet) SetItems(items []types.CartItem) {
	c.items = append([]types.CartItem(nil), items...)
}

// Items returns the displayed items.
func (c *CartSheet) Items() []types.CartItem {
	return append([]types.CartItem(nil), c.items...)
}

// Count returns the total quantity displayed.
func (c *CartSheet) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// SetSize updates the sheet dimensions
func (c *CartSheet) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Trigger renders the outline button that opens the sheet.
func (c *CartSheet) Trigger(st theme.Styles) string {
	label := icons.Cart.Get()
	if n := c.Count(); n > 0 {
		label += " " + fmt.Sprint(n)
	}
	return Button(st, label, ButtonOutline)
}

// View renders the sheet, or "" when it is closed.
func (c *CartSheet) View(st theme.Styles) string {
	if !c.open {
		return ""
	}

	inner := c.width - st.Sheet.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	lines := []string{st.Title.Render(CartSheetTitle), ""}
	if len(c.items) == 0 {
		lines = append(lines, st.Muted.Render("Your cart is empty"))
	}
	for _, item := range c.items {
		price := st.Price.Render(format.FormatPrice(item.Price, ""))
		qty := st.Muted.Render(fmt.Sprintf("x%d", item.Quantity))
		nameWidth := inner - lipgloss.Width(price) - lipgloss.Width(qty) - 2
		name := format.TruncateText(item.Name, max(nameWidth-3, 1))

		gap := inner - lipgloss.Width(name) - lipgloss.Width(qty) - lipgloss.Width(price) - 1
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, name+" "+qty+strings.Repeat(" ", gap)+price)
	}

	style := st.Sheet.Width(inner + st.Sheet.GetHorizontalPadding())
	if c.height > 0 {
		style = style.Height(c.height - st.Sheet.GetVerticalBorderSize())
	}
	return style.Render(strings.Join(lines, "\n"))
}
