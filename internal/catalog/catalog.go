// Package catalog holds the fixed, ordered list of books tracked by bibletrack.
package catalog

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/bibletrack/internal/domain"
)

var books = []domain.Book{
	{Name: "Genesis", Testament: domain.TestamentOld, Chapters: 50},
	{Name: "Exodus", Testament: domain.TestamentOld, Chapters: 40},
	{Name: "Leviticus", Testament: domain.TestamentOld, Chapters: 27},
	{Name: "Numbers", Testament: domain.TestamentOld, Chapters: 36},
	{Name: "Deuteronomy", Testament: domain.TestamentOld, Chapters: 34},
	{Name: "Joshua", Testament: domain.TestamentOld, Chapters: 24},
	{Name: "Judges", Testament: domain.TestamentOld, Chapters: 21},
	{Name: "Ruth", Testament: domain.TestamentOld, Chapters: 4},
	{Name: "1 Samuel", Testament: domain.TestamentOld, Chapters: 31},
	{Name: "2 Samuel", Testament: domain.TestamentOld, Chapters: 24},
	{Name: "1 Kings", Testament: domain.TestamentOld, Chapters: 22},
	{Name: "2 Kings", Testament: domain.TestamentOld, Chapters: 25},
	{Name: "1 Chronicles", Testament: domain.TestamentOld, Chapters: 29},
	{Name: "2 Chronicles", Testament: domain.TestamentOld, Chapters: 36},
	{Name: "Ezra", Testament: domain.TestamentOld, Chapters: 10},
	{Name: "Nehemiah", Testament: domain.TestamentOld, Chapters: 13},
	{Name: "Esther", Testament: domain.TestamentOld, Chapters: 10},
	{Name: "Job", Testament: domain.TestamentOld, Chapters: 42},
	{Name: "Psalms", Testament: domain.TestamentOld, Chapters: 150},
	{Name: "Proverbs", Testament: domain.TestamentOld, Chapters: 31},
	{Name: "Ecclesiastes", Testament: domain.TestamentOld, Chapters: 12},
	{Name: "Song of Solomon", Testament: domain.TestamentOld, Chapters: 8},
	{Name: "Isaiah", Testament: domain.TestamentOld, Chapters: 66},
	{Name: "Jeremiah", Testament: domain.TestamentOld, Chapters: 52},
	{Name: "Lamentations", Testament: domain.TestamentOld, Chapters: 5},
	{Name: "Ezekiel", Testament: domain.TestamentOld, Chapters: 48},
	{Name: "Daniel", Testament: domain.TestamentOld, Chapters: 12},
	{Name: "Hosea", Testament: domain.TestamentOld, Chapters: 14},
	{Name: "Joel", Testament: domain.TestamentOld, Chapters: 3},
	{Name: "Amos", Testament: domain.TestamentOld, Chapters: 9},
	{Name: "Obadiah", Testament: domain.TestamentOld, Chapters: 1},
	{Name: "Jonah", Testament: domain.TestamentOld, Chapters: 4},
	{Name: "Micah", Testament: domain.TestamentOld, Chapters: 7},
	{Name: "Nahum", Testament: domain.TestamentOld, Chapters: 3},
	{Name: "Habakkuk", Testament: domain.TestamentOld, Chapters: 3},
	{Name: "Zephaniah", Testament: domain.TestamentOld, Chapters: 3},
	{Name: "Haggai", Testament: domain.TestamentOld, Chapters: 2},
	{Name: "Zechariah", Testament: domain.TestamentOld, Chapters: 14},
	{Name: "Malachi", Testament: domain.TestamentOld, Chapters: 4},

	{Name: "Matthew", Testament: domain.TestamentNew, Chapters: 28},
	{Name: "Mark", Testament: domain.TestamentNew, Chapters: 16},
	{Name: "Luke", Testament: domain.TestamentNew, Chapters: 24},
	{Name: "John", Testament: domain.TestamentNew, Chapters: 21},
	{Name: "Acts", Testament: domain.TestamentNew, Chapters: 28},
	{Name: "Romans", Testament: domain.TestamentNew, Chapters: 16},
	{Name: "1 Corinthians", Testament: domain.TestamentNew, Chapters: 16},
	{Name: "2 Corinthians", Testament: domain.TestamentNew, Chapters: 13},
	{Name: "Galatians", Testament: domain.TestamentNew, Chapters: 6},
	{Name: "Ephesians", Testament: domain.TestamentNew, Chapters: 6},
	{Name: "Philippians", Testament: domain.TestamentNew, Chapters: 4},
	{Name: "Colossians", Testament: domain.TestamentNew, Chapters: 4},
	{Name: "1 Thessalonians", Testament: domain.TestamentNew, Chapters: 5},
	{Name: "2 Thessalonians", Testament: domain.TestamentNew, Chapters: 3},
	{Name: "1 Timothy", Testament: domain.TestamentNew, Chapters: 6},
	{Name: "2 Timothy", Testament: domain.TestamentNew, Chapters: 4},
	{Name: "Titus", Testament: domain.TestamentNew, Chapters: 3},
	{Name: "Philemon", Testament: domain.TestamentNew, Chapters: 1},
	{Name: "Hebrews", Testament: domain.TestamentNew, Chapters: 13},
	{Name: "James", Testament: domain.TestamentNew, Chapters: 5},
	{Name: "1 Peter", Testament: domain.TestamentNew, Chapters: 5},
	{Name: "2 Peter", Testament: domain.TestamentNew, Chapters: 3},
	{Name: "1 John", Testament: domain.TestamentNew, Chapters: 5},
	{Name: "2 John", Testament: domain.TestamentNew, Chapters: 1},
	{Name: "3 John", Testament: domain.TestamentNew, Chapters: 1},
	{Name: "Jude", Testament: domain.TestamentNew, Chapters: 1},
	{Name: "Revelation", Testament: domain.TestamentNew, Chapters: 22},
}

var (
	totalChapters int
	byName        = make(map[string]int, len(books))
	byFolded      = make(map[string]int, len(books))
)

func init() {
	for i, b := range books {
		totalChapters += b.Chapters
		byName[b.Name] = i
		byFolded[fold(b.Name)] = i
	}
}

// AllBooks returns the catalog in canonical order. The slice is a copy.
func AllBooks() []domain.Book {
	out := make([]domain.Book, len(books))
	copy(out, books)
	return out
}

// TotalChapters returns the chapter count of the whole catalog.
func TotalChapters() int {
	return totalChapters
}

// ByTestament returns the books of one testament in canonical order.
func ByTestament(t domain.Testament) []domain.Book {
	var out []domain.Book
	for _, b := range books {
		if b.Testament == t {
			out = append(out, b)
		}
	}
	return out
}

// TestamentChapters returns the chapter count of one testament.
func TestamentChapters(t domain.Testament) int {
	n := 0
	for _, b := range books {
		if b.Testament == t {
			n += b.Chapters
		}
	}
	return n
}

// Lookup finds a book by its exact name.
func Lookup(name string) (domain.Book, bool) {
	i, ok := byName[name]
	if !ok {
		return domain.Book{}, false
	}
	return books[i], true
}

// Resolve finds a book ignoring case, spaces and punctuation, so
// "1samuel" and "song of solomon" both match.
func Resolve(query string) (domain.Book, bool) {
	if b, ok := Lookup(query); ok {
		return b, true
	}
	i, ok := byFolded[fold(query)]
	if !ok {
		return domain.Book{}, false
	}
	return books[i], true
}

func fold(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
