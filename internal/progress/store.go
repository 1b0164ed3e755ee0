// Package progress holds the progress store: the in-memory set of completed
// chapters kept in sync with durable storage after every mutation.
package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/transfer"
)

// Mutation describes the change carried by a persist call.
type Mutation struct {
	Kind      domain.ActivityKind
	Book      string
	Chapter   int
	Completed bool
	KeyCount  int // size of the mapping after the change
}

// Backend is the durable storage behind a Store. Read returns (nil, nil)
// when nothing has been stored yet. Write replaces the stored payload.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte, m Mutation) error
}

// LoadObserver is notified when the stored payload could not be used and
// the store fell back to an empty mapping.
type LoadObserver func(err error)

// Store is the single source of truth for completed chapters.
type Store struct {
	mu      sync.Mutex
	backend Backend
	m       domain.ProgressMap
}

// Open loads the mapping from backend. Missing data, read failures and
// unparseable payloads all yield an empty store; onFallback (optional)
// receives the cause for logging.
func Open(ctx context.Context, backend Backend, onFallback LoadObserver) *Store {
	s := &Store{backend: backend, m: domain.ProgressMap{}}

	payload, err := backend.Read(ctx)
	if err != nil {
		notify(onFallback, fmt.Errorf("reading progress: %w", err))
		return s
	}
	if len(payload) == 0 {
		return s
	}
	m, _, err := transfer.Decode(payload)
	if err != nil {
		notify(onFallback, fmt.Errorf("decoding stored progress: %w", err))
		return s
	}
	s.m = m
	return s
}

func notify(fn LoadObserver, err error) {
	if fn != nil {
		fn(err)
	}
}

// Snapshot returns a copy of the current mapping.
func (s *Store) Snapshot() domain.ProgressMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Clone()
}

// Has reports whether key is marked complete.
func (s *Store) Has(key domain.ChapterKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[key]
}

// Len returns the number of completed keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// ToggleChapter flips the completion of one chapter and returns the new state.
func (s *Store) ToggleChapter(ctx context.Context, book string, chapter int) (bool, error) {
	key := domain.KeyFor(book, chapter)
	var done bool
	err := s.mutate(ctx, func(next domain.ProgressMap) Mutation {
		if next[key] {
			delete(next, key)
		} else {
			next[key] = true
		}
		done = next[key]
		return Mutation{Kind: domain.ActivityToggleChapter, Book: book, Chapter: chapter, Completed: done}
	})
	if err != nil {
		return false, err
	}
	return done, nil
}

// SetBookCompletion marks chapters 1..chapterCount of book complete or
// incomplete, one key at a time.
func (s *Store) SetBookCompletion(ctx context.Context, book string, chapterCount int, completed bool) error {
	return s.mutate(ctx, func(next domain.ProgressMap) Mutation {
		for i := 1; i <= chapterCount; i++ {
			key := domain.KeyFor(book, i)
			if completed {
				next[key] = true
			} else {
				delete(next, key)
			}
		}
		return Mutation{Kind: domain.ActivitySetBook, Book: book, Completed: completed}
	})
}

// ClearAll empties the mapping. Callers must have confirmed with the user.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.mutate(ctx, func(next domain.ProgressMap) Mutation {
		clear(next)
		return Mutation{Kind: domain.ActivityClearAll}
	})
}

// Replace swaps in m wholesale. Keys are not validated; unknown books and
// out-of-range chapters are kept and simply never match a catalog view.
func (s *Store) Replace(ctx context.Context, m domain.ProgressMap) error {
	return s.mutate(ctx, func(next domain.ProgressMap) Mutation {
		clear(next)
		for k, v := range m {
			if v {
				next[k] = true
			}
		}
		return Mutation{Kind: domain.ActivityImport}
	})
}

// mutate applies fn to a copy, persists the copy and only then installs
// it, so a failed write leaves the store unchanged.
func (s *Store) mutate(ctx context.Context, fn func(next domain.ProgressMap) Mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.m.Clone()
	mut := fn(next)
	mut.KeyCount = len(next)

	payload, err := transfer.Encode(next)
	if err != nil {
		return err
	}
	if err := s.backend.Write(ctx, payload, mut); err != nil {
		return fmt.Errorf("persisting progress: %w", err)
	}
	s.m = next
	return nil
}
