package main

import (
	"fmt"
	"os"

	"github.com/adelv/folio/internal/catalog"
	"github.com/adelv/folio/internal/config"
	"github.com/adelv/folio/internal/content"
	"github.com/adelv/folio/internal/palette"
	"github.com/atotto/clipboard"
)

// buildRegistry assembles the full command set for the current model
// state. Called once at startup and again whenever the catalog reloads.
func (m *model) buildRegistry() *palette.Registry {
	cmds := []palette.Command{
		{
			ID:          "nav-about",
			Label:       "Go to About",
			Description: "Open the About page",
			Category:    palette.CategoryNavigation,
			Keywords:    []string{"home", "bio", "intro"},
			Shortcut:    "1",
			Run: func() error {
				m.gotoPage(pageAbout)
				return nil
			},
		},
		{
			ID:          "nav-resume",
			Label:       "Go to Resume",
			Description: "Open the Resume page",
			Category:    palette.CategoryNavigation,
			Keywords:    []string{"cv", "experience", "work history"},
			Shortcut:    "2",
			Run: func() error {
				m.gotoPage(pageResume)
				return nil
			},
		},
		{
			ID:          "nav-projects",
			Label:       "Go to Projects",
			Description: "Open the Projects page",
			Category:    palette.CategoryNavigation,
			Keywords:    []string{"portfolio", "work", "code"},
			Shortcut:    "3",
			Run: func() error {
				m.gotoPage(pageProjects)
				return nil
			},
		},
		{
			ID:          "nav-contact",
			Label:       "Go to Contact",
			Description: "Open the Contact page",
			Category:    palette.CategoryNavigation,
			Keywords:    []string{"email", "social", "reach"},
			Shortcut:    "4",
			Run: func() error {
				m.gotoPage(pageContact)
				return nil
			},
		},
		{
			ID:          "scroll-top",
			Label:       "Scroll to Top",
			Description: "Jump to the top of the current page",
			Category:    palette.CategoryNavigation,
			Keywords:    []string{"begin", "start"},
			Shortcut:    "g",
			Run: func() error {
				m.scroll[m.activePage] = 0
				return nil
			},
		},
		{
			ID:          "theme-toggle",
			Label:       "Toggle Theme",
			Description: "Switch between the dark and light theme",
			Category:    palette.CategoryTheme,
			Keywords:    []string{"dark", "light", "colors"},
			Shortcut:    "t",
			Run: func() error {
				next := themeLight
				if m.theme.name == themeLight {
					next = themeDark
				}
				return m.switchTheme(next)
			},
		},
		{
			ID:          "theme-dark",
			Label:       "Use Dark Theme",
			Description: "Switch to the dark theme",
			Category:    palette.CategoryTheme,
			Keywords:    []string{"mocha", "night"},
			Run: func() error {
				return m.switchTheme(themeDark)
			},
		},
		{
			ID:          "theme-light",
			Label:       "Use Light Theme",
			Description: "Switch to the light theme",
			Category:    palette.CategoryTheme,
			Keywords:    []string{"latte", "day"},
			Run: func() error {
				return m.switchTheme(themeLight)
			},
		},
		{
			ID:          "export-resume",
			Label:       "Export Resume",
			Description: "Write the resume as markdown to the current directory",
			Category:    palette.CategoryActions,
			Keywords:    []string{"download", "save", "cv", "markdown"},
			Run: func() error {
				cwd, err := os.Getwd()
				if err != nil {
					m.setError(fmt.Sprintf("Export failed: %v", err))
					return err
				}
				path, err := content.ExportResume(m.body, cwd)
				if err != nil {
					m.setError(fmt.Sprintf("Export failed: %v", err))
					return err
				}
				m.setStatusf("Resume exported to %s", path)
				return nil
			},
		},
		{
			ID:          "copy-email",
			Label:       "Copy Email Address",
			Description: "Copy the contact email to the clipboard",
			Category:    palette.CategoryActions,
			Keywords:    []string{"clipboard", "mail", "contact"},
			Run: func() error {
				if err := clipboard.WriteAll(m.cfg.Owner.Email); err != nil {
					m.setError(fmt.Sprintf("Copy failed: %v", err))
					return err
				}
				m.setStatusf("Copied %s", m.cfg.Owner.Email)
				return nil
			},
		},
		{
			ID:          "copy-profile",
			Label:       "Copy Profile URL",
			Description: "Copy the profile link to the clipboard",
			Category:    palette.CategoryActions,
			Keywords:    []string{"clipboard", "github", "link"},
			Run: func() error {
				if err := clipboard.WriteAll(m.cfg.Owner.Profile); err != nil {
					m.setError(fmt.Sprintf("Copy failed: %v", err))
					return err
				}
				m.setStatusf("Copied %s", m.cfg.Owner.Profile)
				return nil
			},
		},
		{
			ID:          "reload-catalog",
			Label:       "Reload Projects",
			Description: "Re-read the project catalog from disk",
			Category:    palette.CategoryActions,
			Keywords:    []string{"refresh", "catalog"},
			Run: func() error {
				projects, err := catalog.Load(m.cfg.Data.Catalog)
				if err != nil {
					m.setError(fmt.Sprintf("Reload failed: %v", err))
					return err
				}
				m.projects = projects
				m.projFilter = ""
				m.clampProjCursor()
				m.pal.SetRegistry(m.buildRegistry())
				m.setStatusf("Loaded %d projects.", len(projects))
				return nil
			},
		},
	}

	for _, p := range m.projects {
		proj := p
		cmds = append(cmds, palette.Command{
			ID:          "project-" + proj.Slug,
			Label:       "View " + proj.Title,
			Description: proj.Description,
			Category:    palette.CategoryProjects,
			Keywords:    append([]string{proj.Category}, proj.Technologies...),
			Run: func() error {
				m.focusProject(proj.Slug)
				return nil
			},
		})
	}
	for _, cat := range catalog.Categories(m.projects) {
		category := cat
		cmds = append(cmds, palette.Command{
			ID:          "filter-" + catalog.Slugify(category),
			Label:       "Filter: " + category,
			Description: "Show only " + category + " projects",
			Category:    palette.CategoryProjects,
			Keywords:    []string{"category", "narrow"},
			Run: func() error {
				m.setProjectFilter(category)
				return nil
			},
		})
	}

	return palette.NewRegistry(cmds)
}

// switchTheme applies and persists the theme choice. A failed save keeps
// the new theme for the session and surfaces the error in the status bar.
func (m *model) switchTheme(name string) error {
	m.cfg.UI.Theme = config.NormalizeTheme(name)
	m.applyTheme(m.cfg.UI.Theme)
	m.setStatusf("Theme: %s", m.cfg.UI.Theme)
	if err := config.Save(m.cfg); err != nil {
		m.setError(fmt.Sprintf("Theme applied but not saved: %v", err))
		return err
	}
	return nil
}

// openPalette opens the command UI with a fresh session.
func (m *model) openPalette() {
	m.pal.Open()
	m.paletteTop = 0
}
