package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/progress"
	"github.com/alexanderramin/bibletrack/internal/transfer"
)

type transferService struct {
	store    *progress.Store
	now      func() time.Time
	observer UseCaseObserver
}

// NewTransferService builds the import/export use cases. A nil now uses time.Now.
func NewTransferService(store *progress.Store, now func() time.Time, observers ...UseCaseObserver) TransferService {
	if now == nil {
		now = time.Now
	}
	return &transferService{store: store, now: now, observer: useCaseObserverOrNoop(observers)}
}

// Export writes bible-progress-<date>.json into dir and returns its path.
func (s *transferService) Export(ctx context.Context, dir string) (path string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dir": dir}
	defer func() {
		fields["path"] = path
		s.observe(ctx, "export-progress", startedAt, fields, err)
	}()

	snap := s.store.Snapshot()
	fields["keys"] = len(snap)

	var payload []byte
	payload, err = transfer.Encode(snap)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	target := filepath.Join(dir, transfer.ExportFileName(s.now()))
	if err = os.WriteFile(target, payload, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return target, nil
}

func (s *transferService) ExportTo(ctx context.Context, w io.Writer) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "export-progress", startedAt, map[string]any{"path": "-"}, err)
	}()

	var payload []byte
	payload, err = transfer.Encode(s.store.Snapshot())
	if err != nil {
		return err
	}
	if _, err = w.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ReadImport parses and validates path without touching the store.
func (s *transferService) ReadImport(ctx context.Context, path string) (preview *ImportPreview, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		if preview != nil {
			fields["keys"] = len(preview.Progress)
			fields["unknown_keys"] = preview.UnknownKeys
			fields["ignored"] = preview.Stats.Ignored
		}
		s.observe(ctx, "read-import", startedAt, fields, err)
	}()

	m, stats, err := transfer.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	preview = &ImportPreview{
		Path:      path,
		Progress:  m,
		Stats:     stats,
		Replacing: s.store.Len(),
	}
	for key := range m {
		if !isCatalogKey(key) {
			preview.UnknownKeys++
		}
	}
	return preview, nil
}

// ApplyImport replaces the store with the previewed mapping, verbatim.
func (s *transferService) ApplyImport(ctx context.Context, preview *ImportPreview) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, "apply-import", startedAt, fields, err)
	}()

	if preview == nil {
		err = ErrNoImport
		return err
	}
	fields["path"] = preview.Path
	fields["keys"] = len(preview.Progress)
	err = s.store.Replace(ctx, preview.Progress)
	return err
}

func (s *transferService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// isCatalogKey reports whether key names an existing chapter.
func isCatalogKey(key domain.ChapterKey) bool {
	name, chapter, err := key.Split()
	if err != nil {
		return false
	}
	b, ok := catalog.Lookup(name)
	return ok && b.HasChapter(chapter)
}
