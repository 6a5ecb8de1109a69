// Package app composes the storefront components into a Bubble Tea model
// driven by the preference store.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"storefront/internal/debug"
	"storefront/pkg/common"
	"storefront/pkg/config"
	"storefront/pkg/gui/components"
	"storefront/pkg/gui/layout"
	"storefront/pkg/gui/overlays"
	"storefront/pkg/gui/theme"
	"storefront/pkg/prefs"
	"storefront/pkg/types"
)

// DefaultRefreshDelay is how long a refresh keeps the loading flag set.
const DefaultRefreshDelay = 800 * time.Millisecond

// PrefsChangedMsg reports a store change made outside the update loop,
// such as a rehydrate after another process rewrote the snapshot.
type PrefsChangedMsg struct {
	State prefs.State
}

// refreshDoneMsg ends a refresh started with the refresh key.
type refreshDoneMsg struct{}

// Options configure a Model.
type Options struct {
	Products     []types.Product
	Cart         []types.CartItem
	Detect       theme.BackgroundDetector
	RefreshDelay time.Duration
	// LogPath is the debug log the action log reads; empty when logging is off.
	LogPath string
}

// styleCache keeps the last resolved styles so View does not rebuild them
// every frame.
type styleCache struct {
	theme  prefs.Theme
	styles theme.Styles
	valid  bool
}

// Model is the storefront Bubble Tea model.
type Model struct {
	store  *prefs.Store
	layout *layout.Layout
	keys   *common.GlobalKeyMap

	header    *components.Header
	cart      *components.CartSheet
	sidebar   *components.Sidebar
	loader    *components.Loader
	footer    *common.Footer
	shortcuts *common.ShortcutOverlay
	help      *overlays.HelpDialog
	actionLog *overlays.ActionLog

	products     []types.Product
	selected     int
	focus        string
	showHelp     bool
	showActions  bool
	darkBg       bool
	refreshDelay time.Duration
	cache        *styleCache
}

// NewModel builds the model around store. The terminal background is
// probed once here; the system theme follows that answer for the session.
func NewModel(store *prefs.Store, opts Options) Model {
	if opts.Products == nil {
		opts.Products = SampleProducts()
	}
	if opts.RefreshDelay <= 0 {
		opts.RefreshDelay = DefaultRefreshDelay
	}
	darkBg := true
	if opts.Detect != nil {
		darkBg = opts.Detect()
	}

	keys := common.GlobalKeys
	shortcuts := common.NewShortcutOverlay(keys)
	footer := common.NewFooter()
	footer.SetShortcutOverlay(shortcuts)

	cart := components.NewCartSheet()
	cart.SetItems(opts.Cart)

	header := components.NewHeader([]components.NavItem{
		{Label: "Products", Route: config.Routes.Products},
		{Label: "Categories", Route: config.Routes.Products},
	}, cart)
	header.SetTheme(store.Theme())

	return Model{
		store:        store,
		layout:       layout.NewLayout(0, 0), // Will be updated on first WindowSizeMsg
		keys:         keys,
		header:       header,
		cart:         cart,
		sidebar:      components.NewSidebar(Categories(opts.Products)),
		loader:       components.NewLoader("Loading products"),
		footer:       footer,
		shortcuts:    shortcuts,
		help:         overlays.NewHelpDialog(keys),
		actionLog:    overlays.NewActionLog(opts.LogPath),
		products:     opts.Products,
		focus:        common.FocusProducts,
		darkBg:       darkBg,
		refreshDelay: opts.RefreshDelay,
		cache:        &styleCache{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.store.IsLoading() {
		return m.loader.TickCmd()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.syncFocus()
		return m, nil

	case PrefsChangedMsg:
		debug.Log("app: preferences changed externally theme=%s", msg.State.Theme)
		m.syncFocus()
		return m, nil

	case refreshDoneMsg:
		m.store.SetLoading(false)
		return m, nil

	case overlays.ActionLogClosedMsg:
		m.showActions = false
		return m, nil

	case tea.KeyMsg:
		if m.showActions {
			var cmd tea.Cmd
			m.actionLog, cmd = m.actionLog.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.store.IsLoading() {
		return m, m.loader.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Keybindings):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ActionLog):
		m.actionLog.Refresh()
		m.showActions = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		if err := m.store.SetTheme(m.store.Theme().Next()); err != nil {
			debug.Log("app: cycle theme: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.store.ToggleSidebar()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.store.IsLoading() {
			return m, nil
		}
		m.store.SetLoading(true)
		return m, tea.Batch(m.loader.TickCmd(), tea.Tick(m.refreshDelay, func(time.Time) tea.Msg {
			return refreshDoneMsg{}
		}))

	case key.Matches(msg, m.keys.ToggleCart):
		m.cart.Toggle()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.cart.IsOpen() {
			m.cart.Close()
			m.syncFocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusSidebar):
		if m.focus == common.FocusProducts && m.sidebarVisible() {
			m.setFocus(common.FocusSidebar)
		} else if m.focus == common.FocusSidebar {
			m.setFocus(common.FocusProducts)
		}
		return m, nil
	}

	switch m.focus {
	case common.FocusSidebar:
		m.moveSidebar(msg)
	case common.FocusProducts:
		m.moveSelection(msg)
	}
	return m, nil
}

func (m *Model) moveSidebar(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sidebar.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.sidebar.MoveDown()
	default:
		return
	}
	m.selected = 0
}

func (m *Model) moveSelection(msg tea.KeyMsg) {
	visible := len(m.VisibleProducts())
	if visible == 0 {
		return
	}
	cols := m.columns()

	next := m.selected
	switch {
	case key.Matches(msg, m.keys.Left):
		next--
	case key.Matches(msg, m.keys.Right):
		next++
	case key.Matches(msg, m.keys.Up):
		next -= cols
	case key.Matches(msg, m.keys.Down):
		next += cols
	}
	if next >= 0 && next < visible {
		m.selected = next
	}
}

// syncFocus keeps focus on a visible region after a toggle.
func (m *Model) syncFocus() {
	switch {
	case m.cart.IsOpen():
		m.setFocus(common.FocusCart)
	case m.focus == common.FocusSidebar && !m.store.SidebarOpen():
		m.setFocus(common.FocusProducts)
	case m.focus == common.FocusCart:
		m.setFocus(common.FocusProducts)
	}
}

// sidebarVisible reports whether the sidebar is open and wide enough to draw.
func (m Model) sidebarVisible() bool {
	return m.layout.SidebarWidth(m.store.SidebarOpen()) > 0
}

func (m *Model) setFocus(focus string) {
	m.focus = focus
	m.footer.SetFocus(focus)
}

func (m *Model) resize(width, height int) {
	m.layout.Update(width, height)
	m.header.SetWidth(width)
	m.footer.SetSize(width, layout.FooterRows)
	m.help.SetSize(width, height)
	m.actionLog.SetSize(width, height)
	m.cart.SetSize(m.layout.CartSheetWidth(), m.layout.BodyHeight())
}

// Focus returns the focused region name.
func (m Model) Focus() string { return m.focus }

// Selected returns the index of the selected product among the visible ones.
func (m Model) Selected() int { return m.selected }

// CartOpen reports whether the cart sheet is shown.
func (m Model) CartOpen() bool { return m.cart.IsOpen() }

// HelpVisible reports whether the help dialog is shown.
func (m Model) HelpVisible() bool { return m.showHelp }

// ActionLogVisible reports whether the action log is shown.
func (m Model) ActionLogVisible() bool { return m.showActions }

// VisibleProducts returns the products in the selected category.
func (m Model) VisibleProducts() []types.Product {
	category := m.sidebar.Selected()
	if category == "" {
		return m.products
	}
	var out []types.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Styles returns the styles for the store's current theme.
func (m Model) Styles() theme.Styles {
	t := m.store.Theme()
	if m.cache.valid && m.cache.theme == t {
		return m.cache.styles
	}
	darkBg := m.darkBg
	m.cache.styles = theme.NewStyles(theme.Resolve(t, func() bool { return darkBg }))
	m.cache.theme = t
	m.cache.valid = true
	return m.cache.styles
}

func (m Model) columns() int {
	return m.layout.CardColumns(m.store.SidebarOpen(), m.cart.IsOpen())
}

// View implements tea.Model.
func (m Model) View() string {
	if m.layout.Width() == 0 {
		return ""
	}

	st := m.Styles()
	if m.showHelp {
		return m.help.View(st)
	}
	if m.showActions {
		return m.actionLog.View(st)
	}

	m.header.SetTheme(m.store.Theme())

	bodyHeight := m.layout.BodyHeight()
	var regions []string

	sidebarOpen := m.store.SidebarOpen()
	if w := m.layout.SidebarWidth(sidebarOpen); w > 0 {
		m.sidebar.SetSize(w, bodyHeight)
		regions = append(regions, m.sidebar.View(st, true))
	}

	regions = append(regions, lipgloss.NewStyle().
		PaddingLeft(layout.HorizontalMargin).
		Render(m.contentView(st)))

	if sheet := m.cart.View(st); sheet != "" {
		regions = append(regions, sheet)
	}

	body := lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, regions...))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(st),
		body,
		"",
		m.footer.View(st),
	)
}

func (m Model) contentView(st theme.Styles) string {
	if m.store.IsLoading() {
		return m.loader.View(st)
	}

	visible := m.VisibleProducts()
	if len(visible) == 0 {
		return st.Muted.Render("No products in this category")
	}

	cards := make([]string, 0, len(visible))
	for i, p := range visible {
		card := components.ProductCard{
			Product:  p,
			Selected: m.focus == common.FocusProducts && i == m.selected,
		}
		cards = append(cards, card.View(st))
	}
	return components.ProductGrid(cards, m.columns())
}

// Render returns a single frame at the given size, for non-interactive
// output.
func Render(m Model, width, height int) string {
	m.resize(width, height)
	return m.View()
}
