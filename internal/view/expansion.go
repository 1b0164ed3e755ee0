package view

import "github.com/alexanderramin/bibletrack/internal/domain"

// Expansion is the set of books whose chapter rows are shown. The zero
// value is an empty, ready-to-use set.
type Expansion struct {
	open map[string]bool
}

// IsExpanded reports whether the named book is expanded.
func (e *Expansion) IsExpanded(book string) bool {
	return e.open[book]
}

// Toggle flips the named book and returns its new state.
func (e *Expansion) Toggle(book string) bool {
	if e.open[book] {
		delete(e.open, book)
		return false
	}
	e.Set(book, true)
	return true
}

// Set expands or collapses the named book.
func (e *Expansion) Set(book string, expanded bool) {
	if !expanded {
		delete(e.open, book)
		return
	}
	if e.open == nil {
		e.open = make(map[string]bool)
	}
	e.open[book] = true
}

// ExpandAll expands every given book.
func (e *Expansion) ExpandAll(books []domain.Book) {
	for _, b := range books {
		e.Set(b.Name, true)
	}
}

// CollapseAll empties the set.
func (e *Expansion) CollapseAll() {
	clear(e.open)
}

// Len returns the number of expanded books.
func (e *Expansion) Len() int {
	return len(e.open)
}
