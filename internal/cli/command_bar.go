package cli

import (
	"strings"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commandNames are the words the command bar completes first.
var commandNames = []string{
	"status", "books", "book", "toggle", "mark", "unmark",
	"export", "import", "reset", "history", "config", "help", "quit",
}

// bookArgCommands take a book name as their first argument.
var bookArgCommands = map[string]bool{
	"book": true, "toggle": true, "mark": true, "unmark": true,
}

// commandBar is the text input at the bottom of the TUI, focused with ':'.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history     []string
	historyIdx  int
	historyPath string
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	path := state.App.historyPath()
	hist := loadHistory(path)

	return commandBar{
		input:       ti,
		state:       state,
		history:     hist,
		historyIdx:  len(hist),
		historyPath: path,
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = max(w-len(commandPromptPlain)-1, 10)
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if line == "" {
			return nil
		}
		// Keys after a submitted line belong to the view again.
		c.Blur()
		c.addHistory(line)
		return c.executeCommand(line)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

const commandPromptPlain = "bibletrack > "

// View renders the command bar.
func (c *commandBar) View() string {
	prompt := formatter.StylePurple.Render("bibletrack") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("press : to type a command")
	}
	return prompt + c.input.View()
}

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
	appendHistory(c.historyPath, line)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// updateSuggestions completes the command word, then book names for
// commands that take one. textinput suggestions replace the whole value,
// so each suggestion carries the full line.
func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}

	cmd, rest, hasArg := strings.Cut(text, " ")
	if !hasArg {
		c.input.SetSuggestions(filterSuggestions(commandNames, cmd))
		return
	}
	if !bookArgCommands[strings.ToLower(cmd)] {
		c.input.SetSuggestions(nil)
		return
	}

	var names []string
	for _, b := range catalog.AllBooks() {
		names = append(names, b.Name)
	}
	matches := filterSuggestions(names, strings.TrimLeft(rest, " "))
	full := make([]string, len(matches))
	for i, m := range matches {
		full[i] = cmd + " " + m
	}
	c.input.SetSuggestions(full)
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
