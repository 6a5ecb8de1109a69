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

// AddToCartLabel is the card's call-to-action.
const AddToCartLabel = "Add to Cart"

// CardWidth is the outer width of a product card.
const CardWidth = 32

// lowStock is the stock level at which a card warns.
const lowStock = 5

// ProductCard renders one product: name, category, price and the add
// button.
type ProductCard struct {
	Product  types.Product
	Selected bool
}

// View renders the card at CardWidth.
func (c ProductCard) View(st theme.Styles) string {
	style := st.Card
	if c.Selected {
		style = style.BorderForeground(lipgloss.Color(st.Palette.Brand))
	}
	inner := CardWidth - style.GetHorizontalFrameSize()

	name := format.TruncateText(c.Product.Name, inner-3)
	nameStyle := st.Nav.Bold(true)
	if c.Selected {
		nameStyle = nameStyle.Foreground(lipgloss.Color(st.Palette.TextPrimary))
	}

	lines := []string{
		nameStyle.Render(name),
		st.Muted.Render(format.TruncateText(icons.Tag.Get()+" "+c.Product.Category, inner-3)),
	}
	if c.Product.Rating > 0 {
		lines = append(lines, st.Muted.Render(fmt.Sprintf("%s %.1f (%d)", icons.Star.Get(), c.Product.Rating, c.Product.ReviewCount)))
	}
	lines = append(lines, c.stockLine(st), "")

	price := st.Price.Render(format.FormatPrice(c.Product.Price, c.Product.Currency))
	button := Button(st, AddToCartLabel, ButtonDefault)
	gap := inner - lipgloss.Width(price) - lipgloss.Width(button)
	if gap < 1 {
		lines = append(lines, price, button)
	} else {
		lines = append(lines, price+strings.Repeat(" ", gap)+button)
	}

	return style.Width(CardWidth - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (c ProductCard) stockLine(st theme.Styles) string {
	switch {
	case !c.Product.InStock || c.Product.Stock <= 0:
		return st.OutOfStock.Render("Out of stock")
	case c.Product.Stock <= lowStock:
		return st.LowStock.Render(fmt.Sprintf("Only %d left", c.Product.Stock))
	default:
		return st.InStock.Render("In stock")
	}
}

// ProductGrid lays cards out in rows of columns.
func ProductGrid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := make([]string, 0, (end-start)*2)
		for i, card := range cards[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
