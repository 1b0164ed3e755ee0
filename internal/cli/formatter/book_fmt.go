package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/view"
)

// NoBooksMatch is shown when a filter leaves nothing to list.
const NoBooksMatch = "No books match"

const bookBarWidth = 20

// FilterChips renders the active filter as dim bracketed chips. The default
// filter renders a single "All" chip.
func FilterChips(f view.Filter) string {
	chips := []string{f.Testament.Label()}
	if f.UnreadOnly {
		chips = append(chips, "Unread only")
	}
	parts := make([]string, len(chips))
	for i, c := range chips {
		parts[i] = Dim("[") + StyleYellow.Render(c) + Dim("]")
	}
	return strings.Join(parts, " ")
}

// FormatBookTable renders the filtered book list. An empty list renders the
// no-match notice and a hint to clear the filter.
func FormatBookTable(rows []view.BookProgress, f view.Filter) string {
	if len(rows) == 0 {
		return fmt.Sprintf("%s  %s\n%s\n", StyleYellow.Render(NoBooksMatch), FilterChips(f),
			Dim("Drop --testament and --unread to show all books."))
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		name := r.Book.Name
		if r.Done() {
			name = StyleGreen.Render(name)
		}
		table = append(table, []string{
			name,
			TestamentBadge(r.Book.Testament),
			fmt.Sprintf("%d/%d", r.Completed, r.Book.Chapters),
			RenderProgress(r.Percent/100, bookBarWidth),
		})
	}
	var b strings.Builder
	if !f.IsDefault() {
		b.WriteString(FilterChips(f) + "\n\n")
	}
	b.WriteString(RenderTable([]string{"BOOK", "", "READ", "PROGRESS"}, table, 2))
	return b.String()
}

// ChapterGrid lays chapter numbers out in rows of perRow cells. Read
// chapters are green, unread ones dim.
func ChapterGrid(chapters []bool, perRow int) string {
	if perRow < 1 {
		perRow = 10
	}
	cell := len(fmt.Sprint(len(chapters)))
	var b strings.Builder
	for i, done := range chapters {
		num := fmt.Sprintf("%*d", cell, i+1)
		if done {
			b.WriteString(StyleGreen.Render(num))
		} else {
			b.WriteString(Dim(num))
		}
		switch {
		case i == len(chapters)-1:
		case (i+1)%perRow == 0:
			b.WriteString("\n")
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

// FormatBookDetail renders one book with its progress bar and chapter grid.
func FormatBookDetail(r view.BookProgress, chapters []bool) string {
	var b strings.Builder
	title := StyleBold.Render(r.Book.Name) + "  " + TestamentStyle(r.Book.Testament).Render(TestamentName(r.Book.Testament))
	b.WriteString(title + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n", RenderProgress(r.Percent/100, bookBarWidth),
		Dim(fmt.Sprintf("%d of %s read", r.Completed, Plural(r.Book.Chapters, "chapter")))))
	b.WriteString(ChapterGrid(chapters, 10))
	b.WriteString("\n")
	return b.String()
}
