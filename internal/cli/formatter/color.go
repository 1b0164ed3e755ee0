package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TestamentStyle colors Old Testament books blue and New Testament books purple.
func TestamentStyle(t domain.Testament) lipgloss.Style {
	switch t {
	case domain.TestamentOld:
		return StyleBlue
	case domain.TestamentNew:
		return StylePurple
	default:
		return StyleDim
	}
}

// TestamentBadge returns a short colored tag such as "OT" or "NT".
func TestamentBadge(t domain.Testament) string {
	switch t {
	case domain.TestamentOld:
		return StyleBlue.Render("OT")
	case domain.TestamentNew:
		return StylePurple.Render("NT")
	default:
		return StyleDim.Render("--")
	}
}

// TestamentName returns the long display name of a testament.
func TestamentName(t domain.Testament) string {
	switch t {
	case domain.TestamentOld:
		return "Old Testament"
	case domain.TestamentNew:
		return "New Testament"
	default:
		return string(t)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
