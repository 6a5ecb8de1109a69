package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// Focus names used by the shortcut overlay and footer.
const (
	FocusProducts = "products"
	FocusSidebar  = "sidebar"
	FocusCart     = "cart"
)

// ShortcutOverlay manages the display of contextual shortcuts
type ShortcutOverlay struct {
	keyMap  *GlobalKeyMap
	focused string
}

// NewShortcutOverlay creates a new shortcut overlay
func NewShortcutOverlay(keyMap *GlobalKeyMap) *ShortcutOverlay {
	return &ShortcutOverlay{
		keyMap:  keyMap,
		focused: FocusProducts,
	}
}

// SetFocus updates the focused region
func (s *ShortcutOverlay) SetFocus(focus string) {
	s.focused = focus
}

// GetContextualShortcuts returns shortcuts relevant to current context
func (s *ShortcutOverlay) GetContextualShortcuts() []key.Binding {
	var shortcuts []key.Binding

	switch s.focused {
	case FocusProducts:
		shortcuts = append(shortcuts,
			s.keyMap.ToggleCart,
			s.keyMap.ToggleSidebar,
			s.keyMap.CycleTheme,
			s.keyMap.Refresh,
		)
	case FocusSidebar:
		shortcuts = append(shortcuts,
			s.keyMap.Up,
			s.keyMap.Down,
			s.keyMap.FocusSidebar,
			s.keyMap.ToggleSidebar,
		)
	case FocusCart:
		shortcuts = append(shortcuts,
			s.keyMap.Cancel,
		)
	}

	// Always show global shortcuts
	return append(shortcuts, s.keyMap.Quit, s.keyMap.Keybindings)
}

// FormatShortcuts formats the shortcuts for display
func (s *ShortcutOverlay) FormatShortcuts() []Shortcut {
	bindings := s.GetContextualShortcuts()
	shortcuts := make([]Shortcut, 0, len(bindings))

	for _, binding := range bindings {
		if binding.Enabled() {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    s.isGlobalKey(binding),
			})
		}
	}

	return shortcuts
}

// isGlobalKey checks if a keybinding is global
func (s *ShortcutOverlay) isGlobalKey(binding key.Binding) bool {
	// Compare by the key help text since we can't compare structs directly
	helpKey := binding.Help().Key
	return helpKey == s.keyMap.Quit.Help().Key || helpKey == s.keyMap.Keybindings.Help().Key
}

// Shortcut represents a keyboard shortcut with its description
type Shortcut struct {
	Key         string
	Description string
	IsGlobal    bool // Whether this is a global shortcut
}

// AllShortcuts returns all available shortcuts for the help dialog
func AllShortcuts(keyMap *GlobalKeyMap) map[string][]Shortcut {
	sections := keyMap.GetHelpSections()
	result := make(map[string][]Shortcut)

	for sectionName, bindings := range sections {
		shortcuts := make([]Shortcut, 0, len(bindings))
		for _, binding := range bindings {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    binding.Help().Key == keyMap.Quit.Help().Key || binding.Help().Key == keyMap.Keybindings.Help().Key,
			})
		}
		result[sectionName] = shortcuts
	}

	return result
}
