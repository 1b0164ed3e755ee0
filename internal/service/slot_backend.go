package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bibletrack/internal/db"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/progress"
	"github.com/alexanderramin/bibletrack/internal/repository"
)

// ProgressSlot names the storage slot holding the serialized progress.
const ProgressSlot = "bible_tracker_progress_v1"

// slotBackend stores progress in a storage slot and logs each write to the
// activity table in the same transaction.
type slotBackend struct {
	slots repository.SlotRepo
	uow   db.UnitOfWork
	now   func() time.Time
}

// NewSlotBackend returns the SQLite-backed progress.Backend.
func NewSlotBackend(slots repository.SlotRepo, uow db.UnitOfWork) progress.Backend {
	return &slotBackend{slots: slots, uow: uow, now: time.Now}
}

func (b *slotBackend) Read(ctx context.Context) ([]byte, error) {
	slot, err := b.slots.Get(ctx, ProgressSlot)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(slot.Value), nil
}

func (b *slotBackend) Write(ctx context.Context, payload []byte, m progress.Mutation) error {
	return b.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSlotRepo(tx).Put(ctx, ProgressSlot, string(payload)); err != nil {
			return err
		}
		a := &domain.Activity{
			Kind:      m.Kind,
			Book:      m.Book,
			Chapter:   m.Chapter,
			Completed: m.Completed,
			KeyCount:  m.KeyCount,
			At:        b.now().UTC(),
		}
		if err := repository.NewSQLiteActivityRepo(tx).Append(ctx, a); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
}

// OpenProgressStore loads the store through backend. A load that falls
// back to empty progress is reported as a failed "load-progress" use case.
func OpenProgressStore(ctx context.Context, backend progress.Backend, observers ...UseCaseObserver) *progress.Store {
	observer := useCaseObserverOrNoop(observers)
	startedAt := time.Now().UTC()
	store := progress.Open(ctx, backend, func(err error) {
		observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-progress",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    map[string]any{"slot": ProgressSlot},
		})
	})
	return store
}
