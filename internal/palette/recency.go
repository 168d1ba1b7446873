package palette

import (
	"encoding/json"

	"github.com/adelv/folio/internal/debug"
)

// maxRecent caps the recency list. Stored lists longer than this (or with
// duplicates, from older writes) are normalized on load.
const maxRecent = 5

// Store is the durable key-value slot backing the recency list. Read
// returns (nil, nil) when nothing has been stored yet.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Tracker remembers the most recently executed command IDs, most recent
// first, persisted across sessions. Storage failures are logged and
// swallowed: losing recency data must never break the palette.
type Tracker struct {
	store Store
	ids   []string
}

// NewTracker loads the persisted recency list from store. Missing or
// malformed data yields an empty tracker; the bad value self-heals on the
// next Record.
func NewTracker(store Store) *Tracker {
	t := &Tracker{store: store}
	data, err := store.Read()
	if err != nil {
		debug.Log("recency: read failed: %v", err)
		return t
	}
	if len(data) == 0 {
		return t
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		debug.Log("recency: malformed stored list: %v", err)
		return t
	}
	t.ids = normalizeRecent(ids)
	return t
}

// Record moves id to the front of the list, deduplicating and truncating,
// then persists the full list in one write.
func (t *Tracker) Record(id string) {
	if id == "" {
		return
	}
	next := make([]string, 0, maxRecent)
	next = append(next, id)
	for _, existing := range t.ids {
		if existing == id {
			continue
		}
		next = append(next, existing)
		if len(next) == maxRecent {
			break
		}
	}
	t.ids = next

	data, err := json.Marshal(t.ids)
	if err != nil {
		debug.Log("recency: marshal failed: %v", err)
		return
	}
	if err := t.store.Write(data); err != nil {
		debug.Log("recency: write failed: %v", err)
	}
}

// IDs returns the tracked command IDs, most recent first.
func (t *Tracker) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Resolve maps the tracked IDs back to live commands in the given
// registry. IDs that no longer resolve (a removed project, a renamed
// command) are dropped silently.
func (t *Tracker) Resolve(r *Registry) []Command {
	out := make([]Command, 0, len(t.ids))
	for _, id := range t.ids {
		cmd, ok := r.Get(id)
		if !ok {
			continue
		}
		out = append(out, cmd)
		if len(out) == maxRecent {
			break
		}
	}
	return out
}

// normalizeRecent deduplicates (first occurrence wins) and truncates a
// stored list that may predate the current invariants.
func normalizeRecent(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, maxRecent)
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == maxRecent {
			break
		}
	}
	return out
}
