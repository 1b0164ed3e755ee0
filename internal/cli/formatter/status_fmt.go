package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/view"
)

const statusBarWidth = 30

// StatusData is everything the status screen shows.
type StatusData struct {
	Summary    view.Summary
	Testaments []view.TestamentSummary
	Recent     []*domain.Activity
	Now        time.Time
}

// SummaryLine renders the global bar with read and remaining counts.
func SummaryLine(s view.Summary, barWidth int) string {
	return fmt.Sprintf("%s  %s %s  %s %s",
		RenderProgress(s.Percent/100, barWidth),
		StyleGreen.Render(fmt.Sprint(s.Completed)), Dim("read"),
		StyleFg.Render(fmt.Sprint(s.Remaining)), Dim("remaining"),
	)
}

// FormatStatus renders the overall progress, one line per testament, and
// recent activity when there is any.
func FormatStatus(d StatusData) string {
	var b strings.Builder

	b.WriteString(Header("Bible Reading Progress"))
	b.WriteString("\n")
	b.WriteString(SummaryLine(d.Summary, statusBarWidth))
	b.WriteString(Dim(fmt.Sprintf("  of %d chapters", d.Summary.Total)))
	b.WriteString("\n\n")

	if len(d.Testaments) > 0 {
		rows := make([][]string, 0, len(d.Testaments))
		for _, ts := range d.Testaments {
			rows = append(rows, []string{
				TestamentStyle(ts.Testament).Render(TestamentName(ts.Testament)),
				RenderProgress(ts.Percent/100, bookBarWidth),
				fmt.Sprintf("%d/%d", ts.Completed, ts.Total),
				fmt.Sprintf("%d/%d", ts.BooksComplete, ts.Books),
			})
		}
		b.WriteString(RenderTable([]string{"TESTAMENT", "PROGRESS", "CHAPTERS", "BOOKS"}, rows, 2, 3))
	}

	if len(d.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recent Activity"))
		b.WriteString("\n")
		b.WriteString(FormatActivityLines(d.Recent, d.Now))
	}
	return b.String()
}
