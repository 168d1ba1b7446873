package palette

import (
	"strings"

	"github.com/adelv/folio/internal/debug"
)

// State is the palette lifecycle state.
type State int

const (
	StateClosed   State = iota
	StateIdle           // open, empty query: recents + full list
	StateFiltered       // open, non-empty query: ranked matches
)

// Section is one displayed group of commands. Title is the category name,
// or sectionRecent for the recency block shown in the idle state.
type Section struct {
	Title    string
	Commands []Command
}

// SectionRecent titles the recency block in the idle view.
const SectionRecent = "Recent"

// Controller orchestrates one palette: the open/close lifecycle, the
// query, the selected row, and command execution. All methods are
// synchronous; the caller's event loop serializes access.
type Controller struct {
	registry *Registry
	index    *Index
	recents  *Tracker

	state    State
	query    string
	selected int
	visible  []Command
	sections []Section
}

// NewController builds a controller over the given registry and recency
// tracker. The search index is derived here and again on every
// SetRegistry.
func NewController(r *Registry, recents *Tracker) *Controller {
	c := &Controller{
		registry: r,
		index:    NewIndex(r),
		recents:  recents,
	}
	c.rebuild()
	return c
}

// SetRegistry swaps in a rebuilt command list (page, theme, or catalog
// changed) and re-derives the index and the displayed rows. The selection
// is clamped rather than reset so a swap mid-session keeps the cursor
// near where the user left it.
func (c *Controller) SetRegistry(r *Registry) {
	c.registry = r
	c.index = NewIndex(r)
	c.rebuild()
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the palette is showing.
func (c *Controller) IsOpen() bool { return c.state != StateClosed }

// Query returns the current search text.
func (c *Controller) Query() string { return c.query }

// Selected returns the zero-based index of the highlighted row within
// Visible().
func (c *Controller) Selected() int { return c.selected }

// Open resets the session (empty query, selection at the top) and enters
// the idle state. Opening an already-open palette re-resets it.
func (c *Controller) Open() {
	c.state = StateIdle
	c.query = ""
	c.selected = 0
	c.rebuild()
}

// Close dismisses the palette and discards the session state.
func (c *Controller) Close() {
	c.state = StateClosed
	c.query = ""
	c.selected = 0
	c.visible = nil
	c.sections = nil
}

// SetQuery replaces the search text, re-ranks, and resets the selection
// to the top. A whitespace-only query is treated as empty.
func (c *Controller) SetQuery(q string) {
	if c.state == StateClosed {
		return
	}
	c.query = q
	if strings.TrimSpace(q) == "" {
		c.state = StateIdle
	} else {
		c.state = StateFiltered
	}
	c.selected = 0
	c.rebuild()
}

// MoveDown advances the selection, clamped to the last row.
func (c *Controller) MoveDown() {
	if c.state == StateClosed {
		return
	}
	if c.selected < len(c.visible)-1 {
		c.selected++
	}
}

// MoveUp retreats the selection, clamped to the first row.
func (c *Controller) MoveUp() {
	if c.state == StateClosed {
		return
	}
	if c.selected > 0 {
		c.selected--
	}
}

// Select moves the selection directly to row i (mouse hover), clamped to
// the displayed range.
func (c *Controller) Select(i int) {
	if c.state == StateClosed || len(c.visible) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.visible) {
		i = len(c.visible) - 1
	}
	c.selected = i
}

// Execute runs the selected command, records it in the recency tracker,
// and closes the palette. With no row to execute it is a no-op and the
// palette stays open. Action errors are logged, never propagated: nothing
// the palette does may take down the host.
func (c *Controller) Execute() bool {
	if c.state == StateClosed || c.selected < 0 || c.selected >= len(c.visible) {
		return false
	}
	cmd := c.visible[c.selected]
	if err := cmd.Run(); err != nil {
		debug.Log("palette: command %s failed: %v", cmd.ID, err)
	}
	if c.recents != nil {
		c.recents.Record(cmd.ID)
	}
	c.Close()
	return true
}

// Visible returns the flattened list of displayed rows, in the order they
// render. Selected indexes into this slice.
func (c *Controller) Visible() []Command {
	out := make([]Command, len(c.visible))
	copy(out, c.visible)
	return out
}

// Sections returns the displayed rows grouped for rendering: the recency
// block first when idle, then one section per category in first-seen
// order. Concatenating the sections reproduces Visible exactly.
func (c *Controller) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// rebuild recomputes the grouped projection and the flat row list for the
// current state, clamping the selection into range.
func (c *Controller) rebuild() {
	c.sections = nil
	c.visible = nil
	if c.state == StateClosed {
		return
	}

	if c.state == StateIdle && c.recents != nil {
		if recent := c.recents.Resolve(c.registry); len(recent) > 0 {
			c.sections = append(c.sections, Section{Title: SectionRecent, Commands: recent})
		}
	}

	ranked := c.index.Search(c.query)
	byCategory := make(map[string][]Command)
	var order []string
	for _, cmd := range ranked {
		if _, seen := byCategory[cmd.Category]; !seen {
			order = append(order, cmd.Category)
		}
		byCategory[cmd.Category] = append(byCategory[cmd.Category], cmd)
	}
	for _, cat := range order {
		c.sections = append(c.sections, Section{Title: cat, Commands: byCategory[cat]})
	}

	for _, sec := range c.sections {
		c.visible = append(c.visible, sec.Commands...)
	}
	if c.selected >= len(c.visible) {
		c.selected = len(c.visible) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}
