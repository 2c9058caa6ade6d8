package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the session log file, relative to the working directory (project root when run via go run ./cmd/campus).
const DefaultPath = "logs/session.txt"

// Logger stores lines of text (lifecycle events, asset problems) in memory and appends them to a file on disk.
// An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Logger writing to path and ensures the log directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0)}
}

// Discard returns a Logger that only keeps lines in memory.
func Discard() *Logger {
	return New("")
}

// Log appends a line to the logger and to the log file. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
