package main

import (
	"fmt"

	"github.com/adelv/folio/internal/catalog"
	"github.com/adelv/folio/internal/config"
	"github.com/adelv/folio/internal/content"
	"github.com/adelv/folio/internal/palette"
)

const appName = "folio"

// ---------------------------------------------------------------------------
// Pages
// ---------------------------------------------------------------------------

const (
	pageAbout = iota
	pageResume
	pageProjects
	pageContact
	pageCount
)

var pageNames = []string{"About", "Resume", "Projects", "Contact"}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg      config.Config
	body     content.Content
	projects []catalog.Project

	theme  theme
	styles styleSet

	pal *palette.Controller

	activePage int
	scroll     [pageCount]int
	projCursor int
	projFilter string // active category filter, "" for all

	// first visible palette row; keeps the selection inside the modal window
	paletteTop int

	// glamour output cached per page, invalidated on resize and theme change
	rendered [pageCount]string

	status    string
	statusErr bool
	keys      keyMap
	palKeys   paletteKeyMap
	width     int
	height    int
}

func newModel(cfg config.Config, body content.Content, projects []catalog.Project, recents *palette.Tracker) *model {
	m := &model{
		cfg:      cfg,
		body:     body,
		projects: projects,
		keys:     newKeyMap(),
		palKeys:  paletteKeyMap{keyMap: newKeyMap()},
	}
	m.applyTheme(cfg.UI.Theme)
	m.pal = palette.NewController(m.buildRegistry(), recents)
	m.status = "Press ctrl+k for the command palette."
	return m
}

func (m *model) applyTheme(name string) {
	m.theme = themeByName(name)
	m.styles = newStyles(m.theme)
	m.clearRenderCache()
}

func (m *model) clearRenderCache() {
	for i := range m.rendered {
		m.rendered[i] = ""
	}
}

func (m *model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *model) setStatusf(format string, args ...any) {
	m.setStatus(fmt.Sprintf(format, args...))
}

func (m *model) setError(text string) {
	m.status = text
	m.statusErr = true
}

// gotoPage switches the active page and drops any stale scroll position.
func (m *model) gotoPage(p int) {
	if p < 0 || p >= pageCount {
		return
	}
	m.activePage = p
	m.scroll[p] = 0
	if p == pageProjects {
		m.clampProjCursor()
	}
}

// visibleProjects applies the active category filter.
func (m *model) visibleProjects() []catalog.Project {
	if m.projFilter == "" {
		return m.projects
	}
	out := make([]catalog.Project, 0, len(m.projects))
	for _, p := range m.projects {
		if p.Category == m.projFilter {
			out = append(out, p)
		}
	}
	return out
}

func (m *model) clampProjCursor() {
	visible := m.visibleProjects()
	if m.projCursor >= len(visible) {
		m.projCursor = len(visible) - 1
	}
	if m.projCursor < 0 {
		m.projCursor = 0
	}
}

// focusProject jumps to the Projects page with the cursor on the project
// with the given slug, clearing any filter that would hide it.
func (m *model) focusProject(slug string) {
	m.projFilter = ""
	m.gotoPage(pageProjects)
	for i, p := range m.projects {
		if p.Slug == slug {
			m.projCursor = i
			return
		}
	}
	m.projCursor = 0
}

// setProjectFilter narrows the Projects page to one category.
func (m *model) setProjectFilter(category string) {
	m.projFilter = category
	m.projCursor = 0
	m.gotoPage(pageProjects)
	m.setStatusf("Showing %s projects. Press c to clear.", category)
}
