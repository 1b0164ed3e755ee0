package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// huhTheme returns a huh theme using the formatter's Gruvbox palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConfirm creates a yes/no form. description may be empty.
func wizardConfirm(title, description string, result *bool) *huh.Form {
	c := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(result)
	if description != "" {
		c = c.Description(description)
	}
	return huh.NewForm(huh.NewGroup(c)).WithTheme(huhTheme()).WithShowHelp(false)
}

// wizardInputPath creates a single-line input for a file path.
func wizardInputPath(title, placeholder string, result *string) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(result).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a file path is required")
			}
			return nil
		})

	return huh.NewForm(huh.NewGroup(input)).WithTheme(huhTheme()).WithShowHelp(false)
}
