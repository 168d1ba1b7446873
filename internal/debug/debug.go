// Package debug provides conditional debug logging for folio.
//
// Logging is enabled by setting FOLIO_DEBUG. Because the TUI owns the
// terminal, messages go to a log file under the temp directory rather
// than stderr; each run is tagged with a session id so interleaved runs
// can be told apart. When disabled (default), all functions are no-ops.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	enabled bool
	logger  *log.Logger
	session string
)

func init() {
	if os.Getenv("FOLIO_DEBUG") == "" {
		return
	}
	path := filepath.Join(os.TempDir(), "folio-debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	session = uuid.NewString()[:8]
	logger = log.New(f, fmt.Sprintf("[%s] ", session), log.Ltime|log.Lmicroseconds)
	enabled = true
	logger.Printf("session start pid=%d", os.Getpid())
}

// Enabled returns whether debug logging is active.
func Enabled() bool {
	return enabled
}

// Session returns the short id tagging this run's log lines, or "" when
// logging is disabled.
func Session() string {
	return session
}

// Log writes a printf-style debug message if logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}
