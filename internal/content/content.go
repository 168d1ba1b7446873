// Package content manages the markdown backing the About and Resume
// pages. Files live in the data directory so the owner can edit them;
// missing files are seeded with defaults.
package content

import (
	"fmt"
	"os"
	"path/filepath"
)

const aboutFile = "about.md"
const resumeFile = "resume.md"

const defaultAbout = `# Hi, I'm Adel

I build backend systems and terminal tooling in Go. Most of my work
lives somewhere between a network socket and a database, and the parts
I enjoy most are the ones nobody notices because they just keep working.

This portfolio is itself a terminal app. Press ` + "`ctrl+k`" + ` to open the
command palette and jump anywhere.

## What I work with

- Go services, gRPC and plain HTTP
- SQLite and Postgres, with a soft spot for schema migrations
- TUIs, CLIs, and the glue scripts that hold infrastructure together

## Outside the terminal

Film photography, long bike rides, and an ever-growing stack of
unread sci-fi.
`

const defaultResume = `# Adel Varga

Backend engineer, Melbourne.

## Experience

### Senior Backend Engineer, Ledgerline (2023 - now)

- Own the transaction ingestion pipeline (Go, Postgres, NATS)
- Cut reconciliation batch time from 40 minutes to 4
- Mentor two engineers and run the on-call rotation

### Backend Engineer, Freightwise (2020 - 2023)

- Built carrier-integration services handling 2M events/day
- Introduced structured logging and tracing across the fleet
- Led the migration from a PHP monolith to Go services

### Junior Developer, Studio Arc (2018 - 2020)

- Full-stack work on client sites and internal tooling

## Education

BSc Computer Science, University of Melbourne, 2018

## Elsewhere

- github.com/adelv
- adel@adelv.dev
`

// Content holds the loaded page markdown.
type Content struct {
	About  string
	Resume string
}

// Load reads about.md and resume.md from dir, writing the defaults for
// any file that does not exist yet.
func Load(dir string) (Content, error) {
	about, err := loadOrSeed(filepath.Join(dir, aboutFile), defaultAbout)
	if err != nil {
		return Content{}, err
	}
	resume, err := loadOrSeed(filepath.Join(dir, resumeFile), defaultResume)
	if err != nil {
		return Content{}, err
	}
	return Content{About: about, Resume: resume}, nil
}

func loadOrSeed(path, fallback string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return "", fmt.Errorf("create content dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(fallback), 0o644); wErr != nil {
			return "", fmt.Errorf("seed %s: %w", filepath.Base(path), wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return string(data), nil
}

// ExportResume writes the resume markdown to a file in dir and returns
// the written path. Backs the palette's "Export resume" command.
func ExportResume(c Content, dir string) (string, error) {
	path := filepath.Join(dir, "resume-export.md")
	if err := os.WriteFile(path, []byte(c.Resume), 0o644); err != nil {
		return "", fmt.Errorf("export resume: %w", err)
	}
	return path, nil
}
