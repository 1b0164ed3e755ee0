package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/progress"
	"github.com/alexanderramin/bibletrack/internal/view"
)

type progressService struct {
	store    *progress.Store
	observer UseCaseObserver
}

func NewProgressService(store *progress.Store, observers ...UseCaseObserver) ProgressService {
	return &progressService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) Snapshot(context.Context) domain.ProgressMap {
	return s.store.Snapshot()
}

func (s *progressService) Summary(context.Context) view.Summary {
	return view.Summarize(catalog.AllBooks(), s.store.Snapshot())
}

func (s *progressService) Testaments(context.Context) []view.TestamentSummary {
	return view.TestamentSummaries(catalog.AllBooks(), s.store.Snapshot())
}

func (s *progressService) Books(_ context.Context, f view.Filter) []view.BookProgress {
	return view.Rows(catalog.AllBooks(), s.store.Snapshot(), f)
}

func (s *progressService) Book(_ context.Context, name string) (*BookDetail, error) {
	b, err := resolveBook(name)
	if err != nil {
		return nil, err
	}
	snap := s.store.Snapshot()
	row := view.NewBookProgress(b, snap)
	return &BookDetail{BookProgress: row, Chapters: row.Chapters(snap)}, nil
}

func (s *progressService) ToggleChapter(ctx context.Context, name string, chapter int) (done bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"book": name, "chapter": chapter}
	defer func() {
		fields["completed"] = done
		s.observe(ctx, "toggle-chapter", startedAt, fields, err)
	}()

	var b domain.Book
	b, err = resolveBook(name)
	if err != nil {
		return false, err
	}
	if !b.HasChapter(chapter) {
		err = fmt.Errorf("%s has %d chapters, got %d: %w", b.Name, b.Chapters, chapter, ErrChapterOutOfRange)
		return false, err
	}
	fields["book"] = b.Name
	done, err = s.store.ToggleChapter(ctx, b.Name, chapter)
	return done, err
}

func (s *progressService) SetBookCompletion(ctx context.Context, name string, completed bool) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"book": name, "completed": completed}
	defer func() {
		s.observe(ctx, "set-book-completion", startedAt, fields, err)
	}()

	var b domain.Book
	b, err = resolveBook(name)
	if err != nil {
		return err
	}
	fields["book"] = b.Name
	fields["chapters"] = b.Chapters
	err = s.store.SetBookCompletion(ctx, b.Name, b.Chapters, completed)
	return err
}

func (s *progressService) ClearAll(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"cleared": s.store.Len()}
	defer func() {
		s.observe(ctx, "clear-all", startedAt, fields, err)
	}()

	err = s.store.ClearAll(ctx)
	return err
}

func (s *progressService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func resolveBook(name string) (domain.Book, error) {
	b, ok := catalog.Resolve(name)
	if !ok {
		return domain.Book{}, fmt.Errorf("%q: %w", name, ErrUnknownBook)
	}
	return b, nil
}
