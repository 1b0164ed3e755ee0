package testutil

import (
	"time"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/google/uuid"
)

// Progress builds a mapping from raw keys.
func Progress(keys ...string) domain.ProgressMap {
	m := make(domain.ProgressMap, len(keys))
	for _, k := range keys {
		m[domain.ChapterKey(k)] = true
	}
	return m
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithActivityBook(book string, chapter int) ActivityOption {
	return func(a *domain.Activity) {
		a.Book = book
		a.Chapter = chapter
	}
}

func WithActivityAt(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.At = t
	}
}

func WithCompleted(done bool) ActivityOption {
	return func(a *domain.Activity) {
		a.Completed = done
	}
}

func WithKeyCount(n int) ActivityOption {
	return func(a *domain.Activity) {
		a.KeyCount = n
	}
}

func NewTestActivity(kind domain.ActivityKind, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:   uuid.New().String(),
		Kind: kind,
		At:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
