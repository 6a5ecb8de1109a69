package overlays

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"storefront/pkg/gui/theme"
)

// actionMarker selects the preference store lines from the debug log.
const actionMarker = "prefs: "

// ActionLogClosedMsg is sent when the action log is dismissed.
type ActionLogClosedMsg struct{}

// ActionLog is a full-screen scrollable view of the preference actions
// recorded in the debug log.
type ActionLog struct {
	viewport viewport.Model
	path     string
	width    int
	height   int
}

// NewActionLog creates an action log reading from the debug log at path.
// An empty path means debug logging is off.
func NewActionLog(path string) *ActionLog {
	return &ActionLog{
		viewport: viewport.New(0, 0),
		path:     path,
	}
}

// SetSize updates the overlay dimensions
func (a *ActionLog) SetSize(width, height int) {
	a.width = width
	a.height = height

	// Margin, border and padding around the viewport.
	a.viewport.Width = max(width-10, 0)
	a.viewport.Height = max(height-10, 0)
}

// Update handles messages for the action log
func (a *ActionLog) Update(msg tea.Msg) (*ActionLog, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "ctrl+d":
			return a, func() tea.Msg { return ActionLogClosedMsg{} }
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// Refresh reloads the log and scrolls to the newest entry.
func (a *ActionLog) Refresh() {
	a.viewport.SetContent(strings.Join(a.readActions(), "\n"))
	a.viewport.GotoBottom()
}

// View renders the action log
func (a *ActionLog) View(st theme.Styles) string {
	title := st.Title.Render("Action Log")
	if a.path != "" {
		title += " " + st.Muted.Render("("+a.path+")")
	}
	help := st.Description.Render("Use ↑/↓ to scroll • ESC to close")
	header := lipgloss.NewStyle().Align(lipgloss.Center).Render(title) + "\n" + help

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.Palette.BorderActive)).
		Padding(1, 2)
	if a.width > 4 && a.height > 4 {
		style = style.Width(a.width - 4).Height(a.height - 4)
	}

	return style.Render(header + "\n\n" + a.viewport.View())
}

// readActions returns the preference lines of the debug log.
func (a *ActionLog) readActions() []string {
	if a.path == "" {
		return []string{"Debug logging is off. Run with --debug to record actions."}
	}

	file, err := os.Open(a.path)
	if err != nil {
		return []string{"Error: Could not open " + a.path}
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); strings.Contains(line, actionMarker) {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return []string{"Error: Could not read " + a.path}
	}

	if len(lines) == 0 {
		return []string{"No actions recorded yet"}
	}
	return lines
}
