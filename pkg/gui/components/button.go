// Package components holds the presentational storefront components. Each
// component renders with the theme.Styles passed to View so a theme change
// takes effect on the next frame.
package components

import "storefront/pkg/gui/theme"

// ButtonVariant selects the button look.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota // filled with the brand color
	ButtonGhost                        // text only
	ButtonOutline                      // bordered
)

// Button renders a single button label.
func Button(st theme.Styles, label string, variant ButtonVariant) string {
	switch variant {
	case ButtonGhost:
		return st.Button.Render(label)
	case ButtonOutline:
		return st.ButtonOutline.Render(label)
	default:
		return st.ButtonPrimary.Render(label)
	}
}
