package components

import (
	"strings"

	"storefront/pkg/gui/icons"
	"storefront/pkg/gui/theme"
)

// AllCategories is the sidebar entry that clears the category filter.
const AllCategories = "All"

// Sidebar lists product categories.
type Sidebar struct {
	categories []string
	selected   int
	width      int
	height     int
}

// NewSidebar creates a sidebar listing All followed by categories.
func NewSidebar(categories []string) *Sidebar {
	return &Sidebar{categories: append([]string{AllCategories}, categories...)}
}

// SetSize updates the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// MoveUp selects the previous category.
func (s *Sidebar) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown selects the next category.
func (s *Sidebar) MoveDown() {
	if s.selected < len(s.categories)-1 {
		s.selected++
	}
}

// Selected returns the selected category, "" for All.
func (s *Sidebar) Selected() string {
	if s.selected == 0 || s.selected >= len(s.categories) {
		return ""
	}
	return s.categories[s.selected]
}

// View renders the sidebar when open and "" otherwise.
func (s *Sidebar) View(st theme.Styles, open bool) string {
	if !open {
		return ""
	}

	lines := []string{st.Title.Render(icons.Menu.Get() + " Categories"), ""}
	for i, c := range s.categories {
		if i == s.selected {
			lines = append(lines, st.Title.Render(icons.Selected.Get()+" "+c))
			continue
		}
		lines = append(lines, st.Nav.Render("  "+c))
	}

	style := st.Sidebar
	if s.width > 0 {
		style = style.Width(s.width - style.GetHorizontalBorderSize())
	}
	if s.height > 0 {
		style = style.Height(s.height)
	}
	return style.Render(strings.Join(lines, "\n"))
}
