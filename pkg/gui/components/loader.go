package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/gui/theme"
)

// Loader renders a spinner with a label while the store is loading.
type Loader struct {
	spinner spinner.Model
	label   string
}

// NewLoader returns a loader configured with the dot spinner.
func NewLoader(label string) *Loader {
	return &Loader{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		label:   label,
	}
}

// NewCursorLoader returns a loader configured with the blinking cursor spinner.
func NewCursorLoader(label string) *Loader {
	return &Loader{
		spinner: spinner.New(spinner.WithSpinner(BlinkingCursor)),
		label:   label,
	}
}

// SetLabel updates the loader label.
func (l *Loader) SetLabel(label string) {
	if l == nil {
		return
	}
	l.label = label
}

// TickCmd starts the spinner animation.
func (l *Loader) TickCmd() tea.Cmd {
	if l == nil {
		return nil
	}
	return l.spinner.Tick
}

// Update advances the spinner animation when receiving tick messages.
func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	if l == nil {
		return nil
	}

	switch tick := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(tick)
		return cmd
	}

	return nil
}

// View renders the spinner and label.
func (l *Loader) View(st theme.Styles) string {
	if l == nil {
		return ""
	}

	spinnerView := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.Palette.Brand)).
		Render(l.spinner.View())
	if l.label == "" {
		return spinnerView
	}
	return spinnerView + " " + st.Description.Render(l.label)
}
