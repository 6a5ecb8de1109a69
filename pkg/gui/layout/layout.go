// Package layout computes the storefront screen regions.
package layout

import "storefront/pkg/gui/components"

const (
	HeaderRows       = 4 // title row, a bordered cart trigger and the bottom rule
	FooterRows       = 1
	BottomMarginRows = 1
	HorizontalMargin = 1
	SidebarWidth     = 22
	CardGap          = 1
	CartSheetWidth   = 44
)

// Layout manages region dimensions for the UI
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int) *Layout {
	return &Layout{width: width, height: height}
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the terminal width.
func (l *Layout) Width() int { return l.width }

// BodyHeight is the height between header and footer.
func (l *Layout) BodyHeight() int {
	h := l.height - HeaderRows - FooterRows - BottomMarginRows
	if h < 1 {
		return 1
	}
	return h
}

// SidebarWidth returns the sidebar width, zero when it is closed or the
// terminal is too narrow to fit it beside one card.
func (l *Layout) SidebarWidth(open bool) int {
	if !open || l.width < SidebarWidth+components.CardWidth+HorizontalMargin*2 {
		return 0
	}
	return SidebarWidth
}

// ContentWidth is the width left for the product grid.
func (l *Layout) ContentWidth(sidebarOpen bool) int {
	w := l.width - l.SidebarWidth(sidebarOpen) - HorizontalMargin*2
	if w < 0 {
		return 0
	}
	return w
}

// CardColumns is the number of product cards per grid row. An open cart
// sheet takes its width out of the grid.
func (l *Layout) CardColumns(sidebarOpen, cartOpen bool) int {
	width := l.ContentWidth(sidebarOpen)
	if cartOpen {
		width -= l.CartSheetWidth()
	}
	cols := (width + CardGap) / (components.CardWidth + CardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// CartSheetWidth returns the sheet width, capped to the terminal.
func (l *Layout) CartSheetWidth() int {
	if l.width < CartSheetWidth {
		return l.width
	}
	return CartSheetWidth
}
