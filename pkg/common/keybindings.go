package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines global keybindings that work across all regions
type GlobalKeyMap struct {
	// Truly global keys - work from any region, any context
	Quit        key.Binding // q, Ctrl+C - quit application
	Keybindings key.Binding // ? - show help
	ActionLog   key.Binding // Ctrl+D - show the preference action log

	// Preference keys - mutate the preference store
	CycleTheme    key.Binding // t - light → dark → system
	ToggleSidebar key.Binding // b - show/hide categories
	Refresh       key.Binding // r - reload products (drives the loading flag)

	// Cart
	ToggleCart key.Binding // c - open/close the cart sheet

	// Navigation within the focused region
	Up    key.Binding // ↑, k
	Down  key.Binding // ↓, j
	Left  key.Binding // ←, h
	Right key.Binding // →, l

	// Region switching
	FocusSidebar key.Binding // tab - move focus between sidebar and products
	Cancel       key.Binding // esc - close sheet or help
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),
		ActionLog: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "action log"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		ToggleCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cart"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),

		FocusSidebar: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// GlobalKeys is the key map shared by the footer, help dialog and model.
var GlobalKeys = NewGlobalKeyMap()

// HelpSectionOrder is the order the help dialog lists sections in.
var HelpSectionOrder = []string{"Preferences", "Cart", "Navigation", "Global"}

// GetHelpSections returns help sections with categorized keybindings
func (k *GlobalKeyMap) GetHelpSections() map[string][]key.Binding {
	return map[string][]key.Binding{
		"Global": {
			k.Quit,
			k.Keybindings,
			k.ActionLog,
		},
		"Preferences": {
			k.CycleTheme,
			k.ToggleSidebar,
			k.Refresh,
		},
		"Cart": {
			k.ToggleCart,
		},
		"Navigation": {
			k.Up,
			k.Down,
			k.Left,
			k.Right,
			k.FocusSidebar,
			k.Cancel,
		},
	}
}
