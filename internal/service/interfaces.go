package service

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/transfer"
	"github.com/alexanderramin/bibletrack/internal/view"
)

var (
	// ErrUnknownBook is returned when a name does not resolve to a catalog book.
	ErrUnknownBook = errors.New("unknown book")
	// ErrChapterOutOfRange is returned for a chapter outside [1, book chapters].
	ErrChapterOutOfRange = errors.New("chapter out of range")
	// ErrNoImport is returned when ApplyImport is called without a preview.
	ErrNoImport = errors.New("no import pending")
)

// BookDetail is one book with its per-chapter completion flags.
type BookDetail struct {
	view.BookProgress
	Chapters []bool // index 0 is chapter 1
}

type ProgressService interface {
	Snapshot(ctx context.Context) domain.ProgressMap
	Summary(ctx context.Context) view.Summary
	Testaments(ctx context.Context) []view.TestamentSummary
	Books(ctx context.Context, f view.Filter) []view.BookProgress
	Book(ctx context.Context, name string) (*BookDetail, error)
	ToggleChapter(ctx context.Context, book string, chapter int) (bool, error)
	SetBookCompletion(ctx context.Context, book string, completed bool) error
	ClearAll(ctx context.Context) error
}

// ImportPreview is a parsed import file awaiting confirmation.
type ImportPreview struct {
	Path        string
	Progress    domain.ProgressMap
	Stats       transfer.DecodeStats
	UnknownKeys int // keys that match no catalog chapter
	Replacing   int // keys in the store that the import will discard
}

// Chapters returns the number of keys that match catalog chapters.
func (p *ImportPreview) Chapters() int {
	return len(p.Progress) - p.UnknownKeys
}

type TransferService interface {
	Export(ctx context.Context, dir string) (string, error)
	ExportTo(ctx context.Context, w io.Writer) error
	ReadImport(ctx context.Context, path string) (*ImportPreview, error)
	ApplyImport(ctx context.Context, preview *ImportPreview) error
}

type ActivityService interface {
	Recent(ctx context.Context, limit int) ([]*domain.Activity, error)
	Total(ctx context.Context) (int, error)
}
