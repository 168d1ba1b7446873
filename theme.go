package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const themeDark = "dark"
const themeLight = "light"

// theme is one resolved color scheme. Dark is Catppuccin Mocha, light is
// Catppuccin Latte.
type theme struct {
	name string

	text     lipgloss.Color
	subtext  lipgloss.Color
	muted    lipgloss.Color
	accent   lipgloss.Color
	focus    lipgloss.Color
	success  lipgloss.Color
	danger   lipgloss.Color
	info     lipgloss.Color
	surface0 lipgloss.Color
	surface1 lipgloss.Color
	base     lipgloss.Color
	mantle   lipgloss.Color
}

func mochaTheme() theme {
	return theme{
		name:     themeDark,
		text:     "#cdd6f4",
		subtext:  "#a6adc8",
		muted:    "#7f849c",
		accent:   "#f5c2e7",
		focus:    "#b4befe",
		success:  "#a6e3a1",
		danger:   "#f38ba8",
		info:     "#94e2d5",
		surface0: "#313244",
		surface1: "#45475a",
		base:     "#1e1e2e",
		mantle:   "#181825",
	}
}

func latteTheme() theme {
	return theme{
		name:     themeLight,
		text:     "#4c4f69",
		subtext:  "#6c6f85",
		muted:    "#8c8fa1",
		accent:   "#ea76cb",
		focus:    "#7287fd",
		success:  "#40a02b",
		danger:   "#d20f39",
		info:     "#179299",
		surface0: "#ccd0da",
		surface1: "#bcc0cc",
		base:     "#eff1f5",
		mantle:   "#e6e9ef",
	}
}

func themeByName(name string) theme {
	if name == themeLight {
		return latteTheme()
	}
	return mochaTheme()
}

// glamourStyle maps the theme onto one of glamour's built-in style sets.
func (t theme) glamourStyle() string {
	if t.name == themeLight {
		return "light"
	}
	return "dark"
}

// ---------------------------------------------------------------------------
// Styles derived from the active theme
// ---------------------------------------------------------------------------

type styleSet struct {
	title     lipgloss.Style
	tagline   lipgloss.Style
	tabActive lipgloss.Style
	tabIdle   lipgloss.Style
	tabSep    lipgloss.Style
	headerBar lipgloss.Style
	statusBar lipgloss.Style
	footer    lipgloss.Style
	helpKey   lipgloss.Style
	helpDesc  lipgloss.Style

	cursor      lipgloss.Style
	faint       lipgloss.Style
	projTitle   lipgloss.Style
	projTech    lipgloss.Style
	filterBadge lipgloss.Style

	paletteBox   lipgloss.Style
	paletteQuery lipgloss.Style
	sectionTitle lipgloss.Style
	selectedRow  lipgloss.Style
	shortcut     lipgloss.Style
	emptyState   lipgloss.Style
}

func newStyles(t theme) styleSet {
	return styleSet{
		title:     lipgloss.NewStyle().Foreground(t.accent).Bold(true),
		tagline:   lipgloss.NewStyle().Foreground(t.subtext).Italic(true),
		tabActive: lipgloss.NewStyle().Foreground(t.accent).Background(t.surface0).Bold(true).Padding(0, 1),
		tabIdle:   lipgloss.NewStyle().Foreground(t.muted).Background(t.mantle).Padding(0, 1),
		tabSep:    lipgloss.NewStyle().Foreground(t.muted).Background(t.mantle),
		headerBar: lipgloss.NewStyle().Foreground(t.text).Background(t.mantle).Padding(0, 2),
		statusBar: lipgloss.NewStyle().Foreground(t.subtext).Background(t.surface0).Padding(0, 2),
		footer:    lipgloss.NewStyle().Foreground(t.subtext).Background(t.mantle).Padding(0, 2),
		helpKey:   lipgloss.NewStyle().Foreground(t.accent).Bold(true),
		helpDesc:  lipgloss.NewStyle().Foreground(t.subtext),

		cursor:      lipgloss.NewStyle().Foreground(t.accent).Bold(true),
		faint:       lipgloss.NewStyle().Foreground(t.muted),
		projTitle:   lipgloss.NewStyle().Foreground(t.text).Bold(true),
		projTech:    lipgloss.NewStyle().Foreground(t.info),
		filterBadge: lipgloss.NewStyle().Foreground(t.base).Background(t.info).Padding(0, 1),

		paletteBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.accent).Padding(0, 1),
		paletteQuery: lipgloss.NewStyle().Foreground(t.text).Bold(true),
		sectionTitle: lipgloss.NewStyle().Foreground(t.focus).Bold(true),
		selectedRow:  lipgloss.NewStyle().Foreground(t.accent).Bold(true),
		shortcut:     lipgloss.NewStyle().Foreground(t.muted),
		emptyState:   lipgloss.NewStyle().Foreground(t.muted).Italic(true),
	}
}
