package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adelv/folio/internal/palette"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeQuery(m *model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

func TestCtrlKOpensAndClosesPalette(t *testing.T) {
	m := testModel()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if !m.pal.IsOpen() {
		t.Fatal("ctrl+k should open the palette")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if m.pal.IsOpen() {
		t.Fatal("ctrl+k should close an open palette")
	}
}

func TestEscClosesPalette(t *testing.T) {
	m := testModel()
	m.openPalette()

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.pal.IsOpen() {
		t.Fatal("esc should close the palette")
	}
}

func TestTypingFiltersAndEnterExecutes(t *testing.T) {
	m := testModel()
	m.openPalette()

	typeQuery(m, "resume")
	if m.pal.State() != palette.StateFiltered {
		t.Fatalf("state = %v, want filtered while typing", m.pal.State())
	}
	visible := m.pal.Visible()
	if len(visible) == 0 || visible[0].ID != "nav-resume" {
		t.Fatalf("top match = %+v, want nav-resume", visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.pal.IsOpen() {
		t.Fatal("enter should execute and close the palette")
	}
	if m.activePage != pageResume {
		t.Fatalf("activePage = %d, want %d", m.activePage, pageResume)
	}
}

func TestEnterWithNoMatchesKeepsPaletteOpen(t *testing.T) {
	m := testModel()
	m.openPalette()

	typeQuery(m, "zzzz")
	if got := len(m.pal.Visible()); got != 0 {
		t.Fatalf("visible = %d rows, want 0", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.pal.IsOpen() {
		t.Fatal("enter with no matches should be a no-op")
	}
}

func TestBackspaceEditsQuery(t *testing.T) {
	m := testModel()
	m.openPalette()

	typeQuery(m, "them")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.pal.Query(); got != "the" {
		t.Fatalf("query = %q, want \"the\"", got)
	}

	// Draining the query returns to the idle listing.
	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	if m.pal.State() != palette.StateIdle {
		t.Fatalf("state = %v, want idle with an empty query", m.pal.State())
	}
}

func TestTabCyclesPages(t *testing.T) {
	m := testModel()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.activePage != pageResume {
		t.Fatalf("activePage = %d, want %d", m.activePage, pageResume)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activePage != pageAbout {
		t.Fatalf("activePage = %d, want %d", m.activePage, pageAbout)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activePage != pageContact {
		t.Fatalf("activePage = %d, want %d (wraps backwards)", m.activePage, pageContact)
	}
}

func TestNumberKeysJumpToPages(t *testing.T) {
	m := testModel()

	m.Update(keyMsg("3"))
	if m.activePage != pageProjects {
		t.Fatalf("activePage = %d, want %d", m.activePage, pageProjects)
	}
	m.Update(keyMsg("1"))
	if m.activePage != pageAbout {
		t.Fatalf("activePage = %d, want %d", m.activePage, pageAbout)
	}
}

func TestGlobalKeysIgnoredWhilePaletteOpen(t *testing.T) {
	m := testModel()
	m.openPalette()

	m.Update(keyMsg("3"))
	if m.activePage != pageAbout {
		t.Fatalf("page switched to %d while palette open", m.activePage)
	}
	if got := m.pal.Query(); got != "3" {
		t.Fatalf("query = %q, want the keystroke captured as query text", got)
	}
}

func TestPaletteWindowFollowsSelection(t *testing.T) {
	m := testModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14}) // row limit of 4
	m.openPalette()

	total := len(m.pal.Visible())
	for i := 0; i < total; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.paletteTop == 0 {
		t.Fatal("window should scroll once the selection passes the last visible row")
	}
	sel := m.pal.Selected()
	limit := m.paletteRowLimit()
	if sel < m.paletteTop || sel >= m.paletteTop+limit {
		t.Fatalf("selection %d outside window [%d, %d)", sel, m.paletteTop, m.paletteTop+limit)
	}

	for i := 0; i < total; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.paletteTop != 0 {
		t.Fatalf("paletteTop = %d, want 0 after scrolling back", m.paletteTop)
	}
}

func TestProjectCursorMovesOnProjectsPage(t *testing.T) {
	m := testModel()
	m.gotoPage(pageProjects)

	m.Update(keyMsg("j"))
	if m.projCursor != 1 {
		t.Fatalf("projCursor = %d, want 1", m.projCursor)
	}
	m.Update(keyMsg("j"))
	if m.projCursor != 1 {
		t.Fatalf("projCursor = %d, cursor should clamp at the last project", m.projCursor)
	}
	m.Update(keyMsg("k"))
	if m.projCursor != 0 {
		t.Fatalf("projCursor = %d, want 0", m.projCursor)
	}
}
