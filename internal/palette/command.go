// Package palette implements the command palette subsystem: a validated
// command registry, a typo-tolerant weighted search index, a persisted
// recency tracker, and the open/close/selection state machine that ties
// them together. It is independent of any rendering layer so the whole
// subsystem can be exercised without a terminal.
package palette

import "strings"

// Command categories. Closed set, used for display grouping only.
const (
	CategoryNavigation = "Navigation"
	CategoryTheme      = "Theme"
	CategoryProjects   = "Projects"
	CategoryActions    = "Actions"
)

// Command is an invocable, labeled action surfaced in the palette.
type Command struct {
	ID          string   // stable identifier, unique within the registry; recency key
	Label       string   // primary display name and highest-weight search field
	Description string   // secondary text under the label, lowest search weight
	Category    string   // display grouping
	Keywords    []string // auxiliary search terms, not displayed
	Shortcut    string   // display-only key hint
	Run         func() error
}

// Registry holds the full command set for one palette session. It is
// immutable after construction; callers rebuild it when its inputs
// (active page, theme, project catalog) change.
type Registry struct {
	commands []Command
	byID     map[string]Command
}

// NewRegistry builds a registry from caller-assembled commands. Malformed
// entries (missing ID, label, or action) and duplicate IDs are omitted
// rather than rejected; the first occurrence of an ID wins.
func NewRegistry(commands []Command) *Registry {
	r := &Registry{
		commands: make([]Command, 0, len(commands)),
		byID:     make(map[string]Command, len(commands)),
	}
	for _, cmd := range commands {
		if strings.TrimSpace(cmd.ID) == "" || strings.TrimSpace(cmd.Label) == "" || cmd.Run == nil {
			continue
		}
		if _, exists := r.byID[cmd.ID]; exists {
			continue
		}
		r.commands = append(r.commands, cmd)
		r.byID[cmd.ID] = cmd
	}
	return r
}

// All returns every command in insertion order.
func (r *Registry) All() []Command {
	if r == nil {
		return nil
	}
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Get returns the command with the given ID.
func (r *Registry) Get(id string) (Command, bool) {
	if r == nil {
		return Command{}, false
	}
	cmd, ok := r.byID[id]
	return cmd, ok
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}
