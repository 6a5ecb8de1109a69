package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storefront/pkg/common"
	"storefront/pkg/gui/icons"
	"storefront/pkg/prefs"
	"storefront/pkg/storage"
)

func init() {
	icons.SetNerdFonts(false)
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func newTestModel(t *testing.T, store *prefs.Store) Model {
	t.Helper()
	m := NewModel(store, Options{
		Products:     SampleProducts(),
		Cart:         SampleCart(SampleProducts()),
		Detect:       func() bool { return true },
		RefreshDelay: time.Millisecond,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	got, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", updated)
	}
	return got, cmd
}

func TestCycleThemeKeyWalksEveryTheme(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	want := []prefs.Theme{prefs.ThemeLight, prefs.ThemeDark, prefs.ThemeSystem}
	for _, w := range want {
		m, _ = press(t, m, runeKey("t"))
		if got := store.Theme(); got != w {
			t.Fatalf("expected theme %s, got %s", w, got)
		}
	}
}

func TestCycleThemeKeyPersistsSnapshot(t *testing.T) {
	mem := storage.NewMemoryStorage()
	store := prefs.New(mem)
	defer store.Close()
	m := newTestModel(t, store)

	press(t, m, runeKey("t"))
	store.Flush()

	data, err := mem.GetItem(prefs.StorageKey)
	if err != nil {
		t.Fatalf("expected persisted snapshot, got %v", err)
	}
	if string(data) != `{"theme":"light"}` {
		t.Fatalf("unexpected snapshot %s", data)
	}
}

func TestStylesFollowTheme(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	if got := m.Styles().Palette.Name; got != "dark" {
		t.Fatalf("expected system theme on a dark terminal to resolve dark, got %s", got)
	}

	m, _ = press(t, m, runeKey("t"))
	if got := m.Styles().Palette.Name; got != "light" {
		t.Fatalf("expected light palette, got %s", got)
	}
}

func TestToggleSidebarKeyMovesFocusOffHiddenSidebar(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != common.FocusSidebar {
		t.Fatalf("expected sidebar focus, got %s", m.Focus())
	}

	m, _ = press(t, m, runeKey("b"))
	if store.SidebarOpen() {
		t.Fatalf("expected sidebar closed")
	}
	if m.Focus() != common.FocusProducts {
		t.Fatalf("expected focus back on products, got %s", m.Focus())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != common.FocusProducts {
		t.Fatalf("expected tab to keep product focus while sidebar is hidden, got %s", m.Focus())
	}
}

func TestTabKeepsFocusWhenSidebarTooNarrowToDraw(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != common.FocusProducts {
		t.Fatalf("expected product focus with an undrawn sidebar, got %s", m.Focus())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := len(m.VisibleProducts()); got != len(SampleProducts()) {
		t.Fatalf("expected category filter untouched, got %d visible products", got)
	}
}

func TestShrinkingTerminalMovesFocusOffSidebar(t *testing.T) {
	m := newTestModel(t, prefs.New(nil))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != common.FocusSidebar {
		t.Fatalf("expected sidebar focus, got %s", m.Focus())
	}

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})
	if m.Focus() != common.FocusProducts {
		t.Fatalf("expected focus back on products after shrinking, got %s", m.Focus())
	}
}

func TestRefreshKeySetsLoadingUntilDone(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	m, cmd := press(t, m, runeKey("r"))
	if !store.IsLoading() {
		t.Fatalf("expected loading after refresh")
	}
	if cmd == nil {
		t.Fatalf("expected refresh to schedule commands")
	}
	if !strings.Contains(m.View(), "Loading products") {
		t.Fatalf("expected loader in view while loading")
	}

	if _, cmd := press(t, m, runeKey("r")); cmd != nil {
		t.Fatalf("expected no command for refresh while already loading")
	}

	m, _ = press(t, m, refreshDoneMsg{})
	if store.IsLoading() {
		t.Fatalf("expected loading cleared after refresh completes")
	}
	if strings.Contains(m.View(), "Loading products") {
		t.Fatalf("expected loader gone after refresh")
	}
}

func TestCartKeyOpensSheetAndEscCloses(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	m, _ = press(t, m, runeKey("c"))
	if !m.CartOpen() {
		t.Fatalf("expected cart sheet open")
	}
	if m.Focus() != common.FocusCart {
		t.Fatalf("expected cart focus, got %s", m.Focus())
	}
	if !strings.Contains(m.View(), "Shopping Cart") {
		t.Fatalf("expected cart sheet title in view")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.CartOpen() {
		t.Fatalf("expected cart sheet closed")
	}
	if m.Focus() != common.FocusProducts {
		t.Fatalf("expected product focus, got %s", m.Focus())
	}
}

func TestHelpKeyShowsDialogAndAnyKeyDismisses(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	m, _ = press(t, m, runeKey("?"))
	if !m.HelpVisible() {
		t.Fatalf("expected help dialog visible")
	}
	if !strings.Contains(m.View(), "Keybindings") {
		t.Fatalf("expected help dialog in view")
	}

	m, _ = press(t, m, runeKey("t"))
	if m.HelpVisible() {
		t.Fatalf("expected help dialog dismissed")
	}
	if store.Theme() != prefs.ThemeSystem {
		t.Fatalf("expected dismissing key to be swallowed, theme is %s", store.Theme())
	}
}

func TestActionLogKeyOpensAndClosesOverlay(t *testing.T) {
	m := newTestModel(t, prefs.New(nil))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if !m.ActionLogVisible() {
		t.Fatalf("expected action log visible")
	}
	if !strings.Contains(m.View(), "Action Log") {
		t.Fatalf("expected action log in view")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected close command from action log")
	}
	m, _ = press(t, m, cmd())
	if m.ActionLogVisible() {
		t.Fatalf("expected action log hidden")
	}
}

func TestQuitKeyReturnsQuit(t *testing.T) {
	m := newTestModel(t, prefs.New(nil))

	_, cmd := press(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestArrowKeysMoveSelectionWithinGrid(t *testing.T) {
	m := newTestModel(t, prefs.New(nil))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Selected() != 1 {
		t.Fatalf("expected selection 1, got %d", m.Selected())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Selected() != 0 {
		t.Fatalf("expected selection clamped at 0, got %d", m.Selected())
	}

	// 200 columns with the sidebar open fit five cards per row.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Selected() != 5 {
		t.Fatalf("expected selection 5, got %d", m.Selected())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Selected() != 5 {
		t.Fatalf("expected selection unchanged past the last row, got %d", m.Selected())
	}
}

func TestOpenCartNarrowsGridRows(t *testing.T) {
	m := newTestModel(t, prefs.New(nil))
	if got := m.columns(); got != 5 {
		t.Fatalf("expected 5 columns, got %d", got)
	}

	m, _ = press(t, m, runeKey("c"))
	if got := m.columns(); got != 4 {
		t.Fatalf("expected 4 columns beside the cart sheet, got %d", got)
	}
}

func TestSidebarSelectionFiltersProducts(t *testing.T) {
	m := newTestModel(t, prefs.New(nil))

	if got := len(m.VisibleProducts()); got != len(SampleProducts()) {
		t.Fatalf("expected every product visible, got %d", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	visible := m.VisibleProducts()
	if len(visible) == 0 {
		t.Fatalf("expected products in the first category")
	}
	for _, p := range visible {
		if p.Category != "Accessories" {
			t.Fatalf("expected only Accessories, got %s", p.Category)
		}
	}
	if m.Selected() != 0 {
		t.Fatalf("expected selection reset on category change, got %d", m.Selected())
	}
}

func TestPrefsChangedMsgAfterRehydrate(t *testing.T) {
	mem := storage.NewMemoryStorage()
	store := prefs.New(mem)
	defer store.Close()
	m := newTestModel(t, store)

	if err := mem.SetItem(prefs.StorageKey, []byte(`{"theme":"light"}`)); err != nil {
		t.Fatalf("seeding snapshot: %v", err)
	}
	if !store.Rehydrate() {
		t.Fatalf("expected rehydrate to change state")
	}

	m, _ = press(t, m, PrefsChangedMsg{State: store.State()})
	if got := m.Styles().Palette.Name; got != "light" {
		t.Fatalf("expected light palette after rehydrate, got %s", got)
	}
}

func TestViewBeforeResizeIsEmpty(t *testing.T) {
	m := NewModel(prefs.New(nil), Options{})
	if got := m.View(); got != "" {
		t.Fatalf("expected empty view before the first size message, got %q", got)
	}
}

func TestViewHidesSidebarWhenClosed(t *testing.T) {
	store := prefs.New(nil)
	m := newTestModel(t, store)

	if !strings.Contains(m.View(), "All") {
		t.Fatalf("expected sidebar entries in view")
	}

	m, _ = press(t, m, runeKey("b"))
	if strings.Contains(m.View(), "≡ Categories") {
		t.Fatalf("expected sidebar hidden")
	}
}

func TestRenderProducesFrame(t *testing.T) {
	m := NewModel(prefs.New(nil), Options{Detect: func() bool { return false }})

	out := Render(m, 120, 30)
	for _, want := range []string{"Your Store", "Add to Cart", "Classic Leather Sneakers"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered frame", want)
		}
	}
}

func TestCategoriesSortedAndDistinct(t *testing.T) {
	got := Categories(SampleProducts())
	want := []string{"Accessories", "Clothing", "Shoes"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSampleCartHoldsFeaturedProducts(t *testing.T) {
	products := SampleProducts()
	cart := SampleCart(products)
	if len(cart) != 1 {
		t.Fatalf("expected one featured product in cart, got %d", len(cart))
	}
	if cart[0].ProductID != "p-100" || cart[0].Quantity != 1 {
		t.Fatalf("unexpected cart item %+v", cart[0])
	}
	if products[0].Slug != "classic-leather-sneakers" {
		t.Fatalf("unexpected slug %q", products[0].Slug)
	}
}
