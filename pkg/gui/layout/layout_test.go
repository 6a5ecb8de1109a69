package layout

import (
	"testing"

	"storefront/pkg/gui/components"
)

func TestSidebarTakesWidthOnlyWhenOpen(t *testing.T) {
	l := NewLayout(120, 40)

	if got := l.SidebarWidth(false); got != 0 {
		t.Fatalf("closed sidebar width = %d want 0", got)
	}
	if got := l.SidebarWidth(true); got != SidebarWidth {
		t.Fatalf("open sidebar width = %d want %d", got, SidebarWidth)
	}
	if open, closed := l.ContentWidth(true), l.ContentWidth(false); closed-open != SidebarWidth {
		t.Fatalf("content width open=%d closed=%d differ by %d want %d", open, closed, closed-open, SidebarWidth)
	}
}

func TestNarrowTerminalHidesSidebar(t *testing.T) {
	l := NewLayout(components.CardWidth+10, 20)
	if got := l.SidebarWidth(true); got != 0 {
		t.Fatalf("sidebar width on narrow terminal = %d want 0", got)
	}
}

func TestCardColumns(t *testing.T) {
	tests := []struct {
		width int
		open  bool
		cart  bool
		want  int
	}{
		{10, false, false, 1},
		{components.CardWidth + HorizontalMargin*2, false, false, 1},
		{(components.CardWidth+CardGap)*3 + HorizontalMargin*2, false, false, 3},
		{(components.CardWidth+CardGap)*3 + HorizontalMargin*2, true, false, 2},
		{200, true, false, 5},
		{200, true, true, 4},
		{CartSheetWidth, false, true, 1},
	}

	for _, tt := range tests {
		l := NewLayout(tt.width, 30)
		if got := l.CardColumns(tt.open, tt.cart); got != tt.want {
			t.Fatalf("CardColumns(width=%d, open=%t, cart=%t) = %d want %d", tt.width, tt.open, tt.cart, got, tt.want)
		}
	}
}

func TestBodyHeight(t *testing.T) {
	l := NewLayout(80, 30)
	if got, want := l.BodyHeight(), 30-HeaderRows-FooterRows-BottomMarginRows; got != want {
		t.Fatalf("BodyHeight = %d want %d", got, want)
	}

	l.Update(80, 2)
	if got := l.BodyHeight(); got != 1 {
		t.Fatalf("BodyHeight on tiny terminal = %d want 1", got)
	}
}

func TestCartSheetWidthCapped(t *testing.T) {
	if got := NewLayout(30, 10).CartSheetWidth(); got != 30 {
		t.Fatalf("CartSheetWidth = %d want 30", got)
	}
	if got := NewLayout(200, 10).CartSheetWidth(); got != CartSheetWidth {
		t.Fatalf("CartSheetWidth = %d want %d", got, CartSheetWidth)
	}
}
