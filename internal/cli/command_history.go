package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/db"
)

const (
	maxHistoryLines = 500
	historyFileName = "command_history"
)

// historyPath returns the command bar history file, kept next to the
// database. It is empty (history stays in memory) when no config is loaded
// or the database is in memory.
func (a *App) historyPath() string {
	if a.Config == nil || a.Config.DBPath == "" || a.Config.DBPath == db.MemoryPath {
		return ""
	}
	return filepath.Join(filepath.Dir(a.Config.DBPath), historyFileName)
}

// loadHistory reads command history from path, keeping the newest
// maxHistoryLines entries. A missing or unreadable file yields nil.
func loadHistory(path string) []string {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

// appendHistory appends one line to path. History is best-effort, so
// errors are dropped.
func appendHistory(path, line string) {
	line = strings.TrimSpace(line)
	if path == "" || line == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line + "\n")
}
