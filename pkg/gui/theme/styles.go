package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Palette Palette

	Title       lipgloss.Style
	Nav         lipgloss.Style
	Description lipgloss.Style
	Muted       lipgloss.Style
	Price       lipgloss.Style
	Separator   lipgloss.Style

	Button        lipgloss.Style // ghost
	ButtonPrimary lipgloss.Style
	ButtonOutline lipgloss.Style
	Badge         lipgloss.Style

	Header  lipgloss.Style
	Card    lipgloss.Style
	Sidebar lipgloss.Style
	Sheet   lipgloss.Style

	InStock    lipgloss.Style
	LowStock   lipgloss.Style
	OutOfStock lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Brand)),
		Nav: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextDescription)),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextDescription)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextMuted)),
		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Price)),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.SeparatorColor)),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)).
			Padding(0, 1),
		ButtonPrimary: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.OnBrand)).
			Background(lipgloss.Color(p.Brand)).
			Padding(0, 1),
		ButtonOutline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderMuted)).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.OnBrand)).
			Background(lipgloss.Color(p.InfoStatus)).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(p.SeparatorColor)).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderMuted)).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(p.SeparatorColor)).
			Padding(0, 1),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderActive)).
			Padding(1, 2),

		InStock:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.SuccessStatus)),
		LowStock:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.WarningStatus)),
		OutOfStock: lipgloss.NewStyle().Foreground(lipgloss.Color(p.ErrorStatus)),
	}
}
