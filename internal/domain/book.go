package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Book is an immutable catalog entry.
type Book struct {
	Name      string
	Testament Testament
	Chapters  int
}

// ChapterKey identifies one chapter in the progress mapping, formatted
// "<bookName>-<chapterNumber>".
type ChapterKey string

// KeyFor builds the key for chapter n of the named book.
func KeyFor(book string, chapter int) ChapterKey {
	return ChapterKey(book + "-" + strconv.Itoa(chapter))
}

// Key returns the key for chapter n of b.
func (b Book) Key(chapter int) ChapterKey {
	return KeyFor(b.Name, chapter)
}

// HasChapter reports whether n is within [1, b.Chapters].
func (b Book) HasChapter(n int) bool {
	return n >= 1 && n <= b.Chapters
}

// Split parses the key at its last '-', so names such as "1 Samuel" or
// "Song of Solomon" survive the round trip.
func (k ChapterKey) Split() (book string, chapter int, err error) {
	s := string(k)
	i := strings.LastIndexByte(s, '-')
	if i <= 0 || i == len(s)-1 {
		return "", 0, fmt.Errorf("malformed chapter key %q", s)
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed chapter key %q: %w", s, err)
	}
	return s[:i], n, nil
}
