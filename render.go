package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/adelv/folio/internal/debug"
	"github.com/adelv/folio/internal/palette"
)

func (m *model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	header := m.renderHeader()
	body := m.renderPage()
	statusLine := m.renderStatus()
	footer := m.renderFooter()

	base := m.composeScreen(header, body, statusLine, footer)
	if m.pal.IsOpen() {
		return m.overlayPalette(base)
	}
	return base
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m *model) renderHeader() string {
	name := m.styles.title.Render(appName)
	tagline := m.styles.tagline.Render(m.cfg.Owner.Tagline)

	var tabs []string
	for i, page := range pageNames {
		if i == m.activePage {
			tabs = append(tabs, m.styles.tabActive.Render(page))
		} else {
			tabs = append(tabs, m.styles.tabIdle.Render(page))
		}
	}
	tabBar := strings.Join(tabs, m.styles.tabSep.Render("│"))

	line := name + "  " + tabBar + "  " + tagline
	return m.styles.headerBar.Render(padRight(line, m.width-4))
}

func (m *model) renderStatus() string {
	text := m.status
	if m.statusErr {
		text = lipgloss.NewStyle().Foreground(m.theme.danger).Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return m.styles.statusBar.Render(padRight(flat, m.width-4))
}

func (m *model) renderFooter() string {
	var bindings []key.Binding
	if m.pal.IsOpen() {
		bindings = m.palKeys.ShortHelp()
	} else {
		bindings = m.keys.ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, m.styles.helpKey.Render(help.Key)+" "+m.styles.helpDesc.Render(help.Desc))
	}
	return m.styles.footer.Render(padRight(strings.Join(parts, "  "), m.width-4))
}

func (m *model) composeScreen(header, body, statusLine, footer string) string {
	contentHeight := m.height - lipgloss.Height(header) - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return header + "\n" + main + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// Pages
// ---------------------------------------------------------------------------

func (m *model) renderPage() string {
	switch m.activePage {
	case pageAbout:
		return m.renderMarkdownPage(pageAbout, m.body.About)
	case pageResume:
		return m.renderMarkdownPage(pageResume, m.body.Resume)
	case pageProjects:
		return m.renderProjects()
	case pageContact:
		return m.renderContact()
	}
	return ""
}

// renderMarkdownPage renders page markdown through glamour with a scroll
// window. Output is cached until the width or theme changes.
func (m *model) renderMarkdownPage(p int, markdown string) string {
	if m.rendered[p] == "" {
		m.rendered[p] = m.renderMarkdown(markdown)
	}
	lines := splitLines(m.rendered[p])

	visible := m.pageHeight()
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll[p] > maxScroll {
		m.scroll[p] = maxScroll
	}
	end := m.scroll[p] + visible
	if end > len(lines) {
		end = len(lines)
	}
	out := strings.Join(lines[m.scroll[p]:end], "\n")
	if end < len(lines) {
		out += "\n" + m.styles.faint.Render("  ↓ more")
	}
	return out
}

func (m *model) renderMarkdown(markdown string) string {
	width := m.width - 4
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.theme.glamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		debug.Log("render: glamour init failed: %v", err)
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		debug.Log("render: glamour render failed: %v", err)
		return markdown
	}
	return strings.TrimRight(out, "\n")
}

func (m *model) renderProjects() string {
	visible := m.visibleProjects()

	var b strings.Builder
	b.WriteString("  " + m.styles.title.Render("Projects"))
	if m.projFilter != "" {
		b.WriteString("  " + m.styles.filterBadge.Render(m.projFilter))
	}
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(m.styles.emptyState.Render("  No projects in this category."))
		return b.String()
	}

	width := m.width - 6
	for i, p := range visible {
		prefix := "  "
		title := m.styles.projTitle.Render(p.Title)
		if i == m.projCursor {
			prefix = m.styles.cursor.Render("> ")
			title = m.styles.cursor.Render(p.Title)
		}
		b.WriteString(prefix + title + "  " + m.styles.faint.Render(p.Category) + "\n")
		if p.Description != "" {
			b.WriteString("    " + truncate(p.Description, width) + "\n")
		}
		meta := strings.Join(p.Technologies, " · ")
		if p.URL != "" {
			if meta != "" {
				meta += "  "
			}
			meta += p.URL
		}
		if meta != "" {
			b.WriteString("    " + m.styles.projTech.Render(truncate(meta, width)) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *model) renderContact() string {
	rows := []struct {
		label string
		value string
	}{
		{"Email", m.cfg.Owner.Email},
		{"Profile", m.cfg.Owner.Profile},
	}
	var b strings.Builder
	b.WriteString("  " + m.styles.title.Render("Contact") + "\n\n")
	b.WriteString("  " + m.cfg.Owner.Name + "\n")
	b.WriteString("  " + m.styles.tagline.Render(m.cfg.Owner.Tagline) + "\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", row.label, row.value))
	}
	b.WriteString("\n" + m.styles.faint.Render("  Copy these from the palette: ctrl+k, then \"copy\"."))
	return b.String()
}

func (m *model) pageHeight() int {
	h := m.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

// ---------------------------------------------------------------------------
// Palette overlay
// ---------------------------------------------------------------------------

func (m *model) overlayPalette(base string) string {
	modal := m.styles.paletteBox.Render(m.renderPaletteContent())
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (m.height - 2 - modalHeight) / 2
	if y < 1 {
		y = 1
	}
	return overlayAt(base, modal, x, y, m.width, m.height)
}

func (m *model) renderPaletteContent() string {
	width := m.paletteWidth()

	queryLine := m.styles.paletteQuery.Render("> " + m.pal.Query() + "█")
	rows := []string{padRight(queryLine, width), padRight("", width)}

	visible := m.pal.Visible()
	if len(visible) == 0 {
		rows = append(rows, padRight(m.styles.emptyState.Render("No matching commands"), width))
		return strings.Join(rows, "\n")
	}

	limit := m.paletteRowLimit()
	top := m.paletteTop
	if top > 0 {
		rows = append(rows, padRight(m.styles.faint.Render("↑ more"), width))
	}

	idx := 0
	for _, sec := range m.pal.Sections() {
		headerShown := false
		for _, cmd := range sec.Commands {
			inWindow := idx >= top && idx < top+limit
			if inWindow {
				if !headerShown {
					rows = append(rows, padRight(m.styles.sectionTitle.Render(sec.Title), width))
					headerShown = true
				}
				rows = append(rows, m.renderPaletteRow(cmd, idx == m.pal.Selected(), width))
			}
			idx++
		}
	}
	if top+limit < len(visible) {
		rows = append(rows, padRight(m.styles.faint.Render("↓ more"), width))
	}
	return strings.Join(rows, "\n")
}

func (m *model) renderPaletteRow(cmd palette.Command, selected bool, width int) string {
	prefix := "  "
	label := cmd.Label
	if selected {
		prefix = m.styles.selectedRow.Render("> ")
		label = m.styles.selectedRow.Render(cmd.Label)
	}
	line := prefix + label
	if cmd.Description != "" {
		line += m.styles.faint.Render(" · " + cmd.Description)
	}
	line = truncate(line, width)
	if cmd.Shortcut != "" {
		hint := m.styles.shortcut.Render(cmd.Shortcut)
		gap := width - ansi.StringWidth(line) - ansi.StringWidth(hint)
		if gap > 0 {
			line += strings.Repeat(" ", gap) + hint
		}
	}
	return padRight(line, width)
}

func (m *model) paletteWidth() int {
	width := m.width - 10
	if width > 64 {
		width = 64
	}
	if width < 36 {
		width = 36
	}
	return width
}
