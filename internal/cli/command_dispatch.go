package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// mutatingCommands change progress, so the views reload after they run.
var mutatingCommands = map[string]bool{
	"toggle": true, "mark": true, "unmark": true,
}

// executeCommand dispatches a command bar line. Destructive commands run
// through the TUI confirmation forms; everything else goes through the
// cobra tree with its output shown in the content area.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitCommandLine(input)
	if err != nil {
		return outputCmd(errorOutput(err))
	}
	if len(parts) == 0 {
		return nil
	}
	name := strings.ToLower(parts[0])
	args := parts[1:]

	switch name {
	case "quit", "exit", "q":
		return func() tea.Msg { return quitMsg{} }
	case "help", "?":
		return outputCmd(formatter.FormatHelp())
	case "clear":
		return nil
	case "reset":
		return execClearAll(c.state)
	case "import":
		if len(args) != 1 {
			return outputCmd(formatter.StyleYellow.Render("Usage: import <file.json>"))
		}
		return execImportFile(c.state, args[0])
	case "tui":
		return outputCmd(formatter.Dim("Already in the interactive view."))
	}

	app := c.state.App
	parts[0] = name
	if mutatingCommands[name] {
		return actionCmd(func() (string, error) {
			return captureCobraOutput(app, parts), nil
		})
	}
	return func() tea.Msg {
		return cmdOutputMsg{output: captureCobraOutput(app, parts)}
	}
}

// splitCommandLine splits on whitespace, honoring single and double quotes
// so paths with spaces can be passed.
func splitCommandLine(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	var quote rune
	started := false

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			started = true
		case r == ' ' || r == '\t':
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if quote != 0 {
		return nil, errors.New("unterminated quoted string")
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
