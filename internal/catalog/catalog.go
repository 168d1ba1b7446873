// Package catalog loads the project catalog shown on the Projects page
// and fed into the command palette's dynamic commands.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is one portfolio entry.
type Project struct {
	Title        string   `yaml:"title"`
	Slug         string   `yaml:"slug"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	URL          string   `yaml:"url"`
}

type catalogFile struct {
	Projects []Project `yaml:"projects"`
}

const defaultCatalogYAML = `# folio project catalog
# Add projects here; they appear on the Projects page and in the
# command palette as "View <title>" commands.

projects:
  - title: folio
    category: Tools
    description: This site. A terminal portfolio with a fuzzy command palette.
    technologies: [Go, Bubble Tea, Lip Gloss]
    url: https://github.com/adelv/folio

  - title: driftlog
    category: Tools
    description: Structured log tailer with field-aware filtering.
    technologies: [Go, SQLite]
    url: https://github.com/adelv/driftlog

  - title: wavebox
    category: Audio
    description: Small batch resampler and loudness normalizer.
    technologies: [Go, FFmpeg]
    url: https://github.com/adelv/wavebox

  - title: heliograph
    category: Web
    description: Static photo gallery generator with EXIF-driven layouts.
    technologies: [Go, HTML]
    url: https://github.com/adelv/heliograph
`

// Load reads the project catalog at path. A missing file is created with
// the default catalog first, so a fresh install has something to show.
// Entries without a title are dropped; missing slugs are derived from the
// title and duplicate slugs keep their first entry.
func Load(path string) ([]Project, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, fmt.Errorf("create catalog dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultCatalogYAML), 0o644); wErr != nil {
			return nil, fmt.Errorf("write default catalog: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML and normalizes the entries.
func Parse(data []byte) ([]Project, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Projects))
	out := make([]Project, 0, len(f.Projects))
	for _, p := range f.Projects {
		p.Title = strings.TrimSpace(p.Title)
		if p.Title == "" {
			continue
		}
		if strings.TrimSpace(p.Slug) == "" {
			p.Slug = Slugify(p.Title)
		}
		if seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		if strings.TrimSpace(p.Category) == "" {
			p.Category = "Other"
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories returns the distinct project categories in first-seen order.
func Categories(projects []Project) []string {
	seen := make(map[string]bool, len(projects))
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Slugify lowercases a title and collapses runs of non-alphanumerics to
// single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
