package icons

import "testing"

func TestGetHonorsOverride(t *testing.T) {
	SetNerdFonts(false)
	if got := Cart.Get(); got != Cart.Fallback {
		t.Fatalf("Cart.Get() = %q want fallback %q", got, Cart.Fallback)
	}

	SetNerdFonts(true)
	if got := Cart.Get(); got != Cart.NerdFont {
		t.Fatalf("Cart.Get() = %q want nerd font glyph", got)
	}
	SetNerdFonts(false)
}
