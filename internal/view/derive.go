// Package view derives presentation data from the catalog, a progress
// snapshot and transient filter state. Nothing here mutates its inputs.
package view

import (
	"github.com/alexanderramin/bibletrack/internal/domain"
)

// Filter is the transient book-list filter.
type Filter struct {
	Testament  domain.TestamentFilter
	UnreadOnly bool
}

// IsDefault reports whether the filter keeps every book.
func (f Filter) IsDefault() bool {
	return (f.Testament == "" || f.Testament == domain.TestamentAll) && !f.UnreadOnly
}

// Reset restores the show-everything filter.
func (f *Filter) Reset() {
	*f = Filter{Testament: domain.TestamentAll}
}

// FilterBooks keeps books matching the testament filter and, when
// UnreadOnly is set, books that still have unread chapters. Order is preserved.
func FilterBooks(books []domain.Book, progress domain.ProgressMap, f Filter) []domain.Book {
	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if !f.Testament.Matches(b.Testament) {
			continue
		}
		if f.UnreadOnly && PerBookCompletedCount(b, progress) >= b.Chapters {
			continue
		}
		out = append(out, b)
	}
	return out
}

// TotalCompleted counts every present key. It is global: filters never
// narrow it, and inert keys from imports are counted too.
func TotalCompleted(progress domain.ProgressMap) int {
	return progress.Count()
}

// PerBookCompletedCount counts present keys among b's chapters.
func PerBookCompletedCount(b domain.Book, progress domain.ProgressMap) int {
	n := 0
	for i := 1; i <= b.Chapters; i++ {
		if progress[b.Key(i)] {
			n++
		}
	}
	return n
}

// IsBookComplete reports whether every chapter of b is marked.
func IsBookComplete(b domain.Book, progress domain.ProgressMap) bool {
	return PerBookCompletedCount(b, progress) == b.Chapters
}

// Summary is an aggregate over some set of chapters.
type Summary struct {
	Completed int
	Total     int
	Remaining int
	Percent   float64
}

// Summarize reports global progress against the chapters of books.
// Completed is TotalCompleted, so it can exceed Total when the store holds
// inert keys; Remaining and Percent are clamped.
func Summarize(books []domain.Book, progress domain.ProgressMap) Summary {
	total := 0
	for _, b := range books {
		total += b.Chapters
	}
	return newSummary(TotalCompleted(progress), total)
}

func newSummary(completed, total int) Summary {
	s := Summary{Completed: completed, Total: total}
	s.Remaining = max(total-completed, 0)
	if total > 0 {
		s.Percent = min(float64(completed)/float64(total)*100, 100)
	}
	return s
}

// TestamentSummary is the progress of one testament.
type TestamentSummary struct {
	Testament domain.Testament
	Summary
	BooksComplete int
	Books         int
}

// TestamentSummaries aggregates per testament, in catalog order of first
// appearance. Only catalog chapters are counted here.
func TestamentSummaries(books []domain.Book, progress domain.ProgressMap) []TestamentSummary {
	var order []domain.Testament
	acc := map[domain.Testament]*TestamentSummary{}
	completed := map[domain.Testament]int{}
	for _, b := range books {
		ts, ok := acc[b.Testament]
		if !ok {
			ts = &TestamentSummary{Testament: b.Testament}
			acc[b.Testament] = ts
			order = append(order, b.Testament)
		}
		done := PerBookCompletedCount(b, progress)
		completed[b.Testament] += done
		ts.Total += b.Chapters
		ts.Books++
		if done == b.Chapters {
			ts.BooksComplete++
		}
	}

	out := make([]TestamentSummary, 0, len(order))
	for _, t := range order {
		ts := acc[t]
		ts.Summary = newSummary(completed[t], ts.Total)
		out = append(out, *ts)
	}
	return out
}

// BookProgress is one row of the book list.
type BookProgress struct {
	Book      domain.Book
	Completed int
	Percent   float64
}

// Done reports whether the whole book is read.
func (r BookProgress) Done() bool {
	return r.Completed == r.Book.Chapters
}

// Chapters returns the completion flag of every chapter, index 0 being chapter 1.
func (r BookProgress) Chapters(progress domain.ProgressMap) []bool {
	out := make([]bool, r.Book.Chapters)
	for i := range out {
		out[i] = progress[r.Book.Key(i+1)]
	}
	return out
}

// Rows filters books and attaches per-book counts.
func Rows(books []domain.Book, progress domain.ProgressMap, f Filter) []BookProgress {
	filtered := FilterBooks(books, progress, f)
	rows := make([]BookProgress, len(filtered))
	for i, b := range filtered {
		rows[i] = NewBookProgress(b, progress)
	}
	return rows
}

// NewBookProgress computes the row for a single book.
func NewBookProgress(b domain.Book, progress domain.ProgressMap) BookProgress {
	done := PerBookCompletedCount(b, progress)
	row := BookProgress{Book: b, Completed: done}
	if b.Chapters > 0 {
		row.Percent = float64(done) / float64(b.Chapters) * 100
	}
	return row
}
