package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Palette key.Binding
	Quit    key.Binding
	UpDown  key.Binding
	Enter   key.Binding
	Close   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Top     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Palette: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "palette")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "scroll")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Top:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.NextTab, k.UpDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Palette, k.NextTab, k.PrevTab, k.UpDown, k.Top, k.Quit}}
}

type paletteKeyMap struct {
	keyMap
}

func (k paletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.UpDown, k.Close}
}

func (k paletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.UpDown, k.Close}}
}
