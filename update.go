package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clearRenderCache()
		m.clampScroll()
		return m, nil
	case tea.KeyMsg:
		if m.pal.IsOpen() {
			return m.updatePalette(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Main view keys
// ---------------------------------------------------------------------------

func (m *model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Palette):
		m.openPalette()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.gotoPage((m.activePage + 1) % pageCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.gotoPage((m.activePage + pageCount - 1) % pageCount)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.scroll[m.activePage] = 0
		if m.activePage == pageProjects {
			m.projCursor = 0
		}
		return m, nil
	}

	switch msg.String() {
	case "1":
		m.gotoPage(pageAbout)
	case "2":
		m.gotoPage(pageResume)
	case "3":
		m.gotoPage(pageProjects)
	case "4":
		m.gotoPage(pageContact)
	case "down", "j":
		m.moveDown()
	case "up", "k":
		m.moveUp()
	case "c":
		if m.activePage == pageProjects && m.projFilter != "" {
			m.projFilter = ""
			m.projCursor = 0
			m.setStatus("Filter cleared.")
		}
	}
	return m, nil
}

func (m *model) moveDown() {
	if m.activePage == pageProjects {
		if m.projCursor < len(m.visibleProjects())-1 {
			m.projCursor++
		}
		return
	}
	m.scroll[m.activePage]++
	m.clampScroll()
}

func (m *model) moveUp() {
	if m.activePage == pageProjects {
		if m.projCursor > 0 {
			m.projCursor--
		}
		return
	}
	if m.scroll[m.activePage] > 0 {
		m.scroll[m.activePage]--
	}
}

// ---------------------------------------------------------------------------
// Palette keys
// ---------------------------------------------------------------------------

func (m *model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "ctrl+k":
		m.pal.Close()
		return m, nil
	case "enter":
		m.pal.Execute()
		return m, nil
	case "up", "ctrl+p":
		m.pal.MoveUp()
		m.ensurePaletteCursorVisible()
		return m, nil
	case "down", "ctrl+n":
		m.pal.MoveDown()
		m.ensurePaletteCursorVisible()
		return m, nil
	case "ctrl+u":
		m.pal.SetQuery("")
		m.paletteTop = 0
		return m, nil
	}

	switch {
	case isBackspaceKey(msg):
		q := m.pal.Query()
		if q != "" {
			m.pal.SetQuery(q[:len(q)-1])
		}
		m.paletteTop = 0
	case isPrintableASCIIKey(msg.String()):
		m.pal.SetQuery(m.pal.Query() + msg.String())
		m.paletteTop = 0
	}
	return m, nil
}

// ensurePaletteCursorVisible slides the modal window so the selected row
// stays on screen.
func (m *model) ensurePaletteCursorVisible() {
	limit := m.paletteRowLimit()
	total := len(m.pal.Visible())
	if total <= limit {
		m.paletteTop = 0
		return
	}
	sel := m.pal.Selected()
	if sel < m.paletteTop {
		m.paletteTop = sel
	}
	if sel >= m.paletteTop+limit {
		m.paletteTop = sel - limit + 1
	}
	maxTop := total - limit
	if m.paletteTop > maxTop {
		m.paletteTop = maxTop
	}
	if m.paletteTop < 0 {
		m.paletteTop = 0
	}
}

func (m *model) paletteRowLimit() int {
	if m.height == 0 {
		return 10
	}
	limit := m.height - 10
	if limit < 4 {
		limit = 4
	}
	if limit > 14 {
		limit = 14
	}
	return limit
}

func (m *model) clampScroll() {
	for i := range m.scroll {
		if m.scroll[i] < 0 {
			m.scroll[i] = 0
		}
	}
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}

func isBackspaceKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyBackspace
}
