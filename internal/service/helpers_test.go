package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/bibletrack/internal/db"
	"github.com/alexanderramin/bibletrack/internal/progress"
	"github.com/alexanderramin/bibletrack/internal/repository"
	"github.com/alexanderramin/bibletrack/internal/testutil"
)

// recordingObserver captures events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fixture struct {
	db       *sql.DB
	slots    *repository.SQLiteSlotRepo
	activity *repository.SQLiteActivityRepo
	store    *progress.Store
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return openFixture(t, database, testutil.NewTestUoW(database))
}

func openFixture(t *testing.T, database *sql.DB, uow db.UnitOfWork) *fixture {
	t.Helper()
	f := &fixture{
		db:       database,
		slots:    repository.NewSQLiteSlotRepo(database),
		activity: repository.NewSQLiteActivityRepo(database),
		observer: &recordingObserver{},
	}
	f.store = OpenProgressStore(context.Background(), NewSlotBackend(f.slots, uow), f.observer)
	return f
}
