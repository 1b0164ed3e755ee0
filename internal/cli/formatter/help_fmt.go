package formatter

import (
	"fmt"
	"strings"
)

// helpCategory groups key bindings or commands under a section header.
type helpCategory struct {
	title string
	rows  [][2]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, r := range cat.rows {
		fmt.Fprintf(&b, "  %-22s %s\n", StyleGreen.Render(r[0]), StyleDim.Render(r[1]))
	}
	return b.String()
}

// FormatHelp renders the key and command reference shown by '?' and ':help'.
func FormatHelp() string {
	categories := []helpCategory{
		{
			title: "Navigation",
			rows: [][2]string{
				{"↑/↓  k/j", "Move the cursor"},
				{"enter  →/←", "Expand or collapse a book"},
				{"E / C", "Expand or collapse every listed book"},
			},
		},
		{
			title: "Reading",
			rows: [][2]string{
				{"space", "Toggle a chapter, or a whole book on its row"},
			},
		},
		{
			title: "Filters",
			rows: [][2]string{
				{"f", "Cycle All / Old Testament / New Testament"},
				{"u", "Show only books with unread chapters"},
				{"a", "Show all books"},
			},
		},
		{
			title: "Data",
			rows: [][2]string{
				{"e", "Export progress to a JSON file"},
				{"i", "Import progress from a JSON file"},
				{"x", "Clear all progress"},
			},
		},
		{
			title: "Commands",
			rows: [][2]string{
				{":status", "Progress overview"},
				{":book <name>", "Chapter grid of one book"},
				{":history [--limit N]", "Recent changes"},
				{":help", "This reference"},
				{"q / ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	return RenderBox("Keys", b.String())
}
