package palette

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Search scoring works on distances in [0, 1] where 0 is an exact match.
// A candidate is kept only when its best weighted field distance is at or
// under searchThreshold; everything else is excluded outright so a noisy
// query does not drag in the whole registry.
const searchThreshold = 0.3

// Field weights. A weaker field can never outrank a stronger one for the
// same raw distance: the weighted distance is 1 - (1-d)*weight, so an
// exact keyword match scores 0.1 and an exact description match 0.2.
const (
	weightLabel       = 1.0
	weightKeyword     = 0.9
	weightDescription = 0.8
)

// Raw distance tiers for the non-typo match shapes.
const (
	distSubstring   = 0.1  // query appears verbatim inside the field
	distSubsequence = 0.2  // all query characters appear in order
	typoScale       = 0.75 // scales normalized edit distance for the typo path
)

// Index ranks a query against a fixed command list. It is a derived
// structure: rebuild it whenever the underlying registry changes.
type Index struct {
	commands []Command
}

// NewIndex builds a search index over the registry's current command set.
func NewIndex(r *Registry) *Index {
	return &Index{commands: r.All()}
}

type scoredCommand struct {
	cmd   Command
	dist  float64
	order int
}

// Search returns the commands matching query, best first. An empty or
// whitespace-only query bypasses scoring entirely and returns the full
// list in registry order.
func (ix *Index) Search(query string) []Command {
	if ix == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Command, len(ix.commands))
		copy(out, ix.commands)
		return out
	}

	scored := make([]scoredCommand, 0, len(ix.commands))
	for i, cmd := range ix.commands {
		dist, ok := commandDistance(cmd, q)
		if !ok {
			continue
		}
		scored = append(scored, scoredCommand{cmd: cmd, dist: dist, order: i})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].dist != scored[j].dist {
			return scored[i].dist < scored[j].dist
		}
		return scored[i].order < scored[j].order
	})

	out := make([]Command, len(scored))
	for i := range scored {
		out[i] = scored[i].cmd
	}
	return out
}

// commandDistance returns the best weighted field distance for the query,
// or ok=false when no field clears the threshold.
func commandDistance(cmd Command, query string) (float64, bool) {
	best := 2.0
	consider := func(field string, weight float64) {
		d, ok := fieldDistance(query, field)
		if !ok {
			return
		}
		weighted := 1 - (1-d)*weight
		if weighted < best {
			best = weighted
		}
	}

	consider(cmd.Label, weightLabel)
	for _, kw := range cmd.Keywords {
		consider(kw, weightKeyword)
	}
	consider(cmd.Description, weightDescription)

	if best > searchThreshold {
		return 0, false
	}
	return best, true
}

// fieldDistance scores one query against one field. Match shapes, best
// first: exact, substring, in-order subsequence, then a levenshtein typo
// path over the field's tokens (and their query-length prefixes, so a
// partial word with a typo still lands on its token).
func fieldDistance(query, field string) (float64, bool) {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return 0, false
	}
	if f == query {
		return 0, true
	}
	if strings.Contains(f, query) {
		return distSubstring, true
	}
	if adjacent, ok := subsequenceMatch(query, f); ok {
		if adjacent {
			return distSubsequence, true
		}
		return distSubsequence + 0.05, true
	}

	best := 1.0
	for _, token := range strings.Fields(f) {
		candidates := []string{token}
		if len(token) > len(query) {
			candidates = append(candidates, token[:len(query)])
		}
		for _, cand := range candidates {
			n := max(len(query), len(cand))
			if n == 0 {
				continue
			}
			d := float64(levenshtein.ComputeDistance(query, cand)) / float64(n)
			if d < best {
				best = d
			}
		}
	}
	d := best * typoScale
	if d > searchThreshold {
		return 0, false
	}
	return d, true
}

// subsequenceMatch reports whether every query byte appears in order in
// the field. adjacent is true when the majority of matched characters are
// consecutive, which separates tight abbreviations from scattered ones.
func subsequenceMatch(query, field string) (adjacent, ok bool) {
	matchIdx := make([]int, 0, len(query))
	searchFrom := 0
	for i := 0; i < len(query); i++ {
		ch := query[i]
		found := false
		for j := searchFrom; j < len(field); j++ {
			if field[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, false
		}
	}
	runs := 0
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			runs++
		}
	}
	return len(matchIdx) > 1 && runs*2 >= len(matchIdx)-1, true
}
