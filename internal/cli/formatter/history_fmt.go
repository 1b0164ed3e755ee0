package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// DescribeActivity returns a one-line, unstyled description of a mutation.
func DescribeActivity(a *domain.Activity) string {
	switch a.Kind {
	case domain.ActivityToggleChapter:
		if a.Completed {
			return fmt.Sprintf("Read %s %d", a.Book, a.Chapter)
		}
		return fmt.Sprintf("Unmarked %s %d", a.Book, a.Chapter)
	case domain.ActivitySetBook:
		if a.Completed {
			return fmt.Sprintf("Marked %s as read", a.Book)
		}
		return fmt.Sprintf("Cleared %s", a.Book)
	case domain.ActivityClearAll:
		return "Cleared all progress"
	case domain.ActivityImport:
		return fmt.Sprintf("Imported %s", Plural(a.KeyCount, "chapter"))
	default:
		return string(a.Kind)
	}
}

// FormatActivityLines renders activities newest first, one per line, with
// a right-aligned relative timestamp column.
func FormatActivityLines(acts []*domain.Activity, now time.Time) string {
	stamps := make([]string, len(acts))
	width := 0
	for i, a := range acts {
		stamps[i] = HumanTimestamp(a.At, now)
		width = max(width, lipgloss.Width(stamps[i]))
	}

	var b strings.Builder
	for i, a := range acts {
		desc := DescribeActivity(a)
		switch a.Kind {
		case domain.ActivityClearAll:
			desc = StyleRed.Render(desc)
		case domain.ActivityImport:
			desc = StyleYellow.Render(desc)
		default:
			if a.Completed {
				desc = StyleGreen.Render(desc)
			}
		}
		fmt.Fprintf(&b, "  %s  %s\n", Dim(fmt.Sprintf("%*s", width, stamps[i])), desc)
	}
	return b.String()
}

// FormatHistory renders the history command output. total is the number
// of recorded changes; a footer notes when acts is only the newest part.
func FormatHistory(acts []*domain.Activity, total int, now time.Time) string {
	if len(acts) == 0 {
		return Dim("No activity yet.") + "\n"
	}
	out := Header("History") + "\n" + FormatActivityLines(acts, now)
	if total > len(acts) {
		out += "\n" + Dim(fmt.Sprintf("  Showing %d of %s. Use --limit to see more.", len(acts), Plural(total, "change"))) + "\n"
	}
	return out
}
