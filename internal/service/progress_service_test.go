package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/testutil"
	"github.com/alexanderramin/bibletrack/internal/transfer"
	"github.com/alexanderramin/bibletrack/internal/view"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_ToggleChapter(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.store, f.observer)
	ctx := context.Background()

	done, err := svc.ToggleChapter(ctx, "genesis", 3)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, svc.Snapshot(ctx).Done("Genesis-3"), "names resolve to the canonical key")

	ev := f.observer.last()
	assert.Equal(t, "toggle-chapter", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "Genesis", ev.Fields["book"])

	done, err = svc.ToggleChapter(ctx, "Genesis", 3)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, svc.Snapshot(ctx))
}

func TestProgressService_ToggleValidates(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.store, f.observer)
	ctx := context.Background()

	tests := []struct {
		name    string
		book    string
		chapter int
		want    error
	}{
		{"unknown book", "Hezekiah", 1, ErrUnknownBook},
		{"chapter zero", "Ruth", 0, ErrChapterOutOfRange},
		{"past last chapter", "Ruth", 5, ErrChapterOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ToggleChapter(ctx, tt.book, tt.chapter)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, f.observer.last().Success)
		})
	}
	assert.Equal(t, 0, f.store.Len())

	n, err := f.activity.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "rejected calls must not log activity")
}

func TestProgressService_SetBookCompletion(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.store, f.observer)
	ctx := context.Background()

	require.NoError(t, svc.SetBookCompletion(ctx, "1 samuel", true))
	detail, err := svc.Book(ctx, "1 Samuel")
	require.NoError(t, err)
	assert.Equal(t, 31, detail.Completed)
	assert.True(t, detail.Done())
	assert.Len(t, detail.Chapters, 31)

	require.NoError(t, svc.SetBookCompletion(ctx, "1Samuel", false))
	detail, err = svc.Book(ctx, "1 Samuel")
	require.NoError(t, err)
	assert.Equal(t, 0, detail.Completed)

	assert.ErrorIs(t, svc.SetBookCompletion(ctx, "Enoch", true), ErrUnknownBook)
}

func TestProgressService_BooksAndSummary(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.store, f.observer)
	ctx := context.Background()

	require.NoError(t, svc.SetBookCompletion(ctx, "Obadiah", true))
	_, err := svc.ToggleChapter(ctx, "Matthew", 1)
	require.NoError(t, err)

	rows := svc.Books(ctx, view.Filter{Testament: domain.TestamentAll, UnreadOnly: true})
	assert.Len(t, rows, 65)
	for _, r := range rows {
		assert.NotEqual(t, "Obadiah", r.Book.Name)
	}

	nt := svc.Books(ctx, view.Filter{Testament: domain.TestamentOnlyNew})
	require.Len(t, nt, 27)
	assert.Equal(t, 1, nt[0].Completed)

	s := svc.Summary(ctx)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1189, s.Total)
	assert.Equal(t, 1187, s.Remaining)

	ts := svc.Testaments(ctx)
	require.Len(t, ts, 2)
	assert.Equal(t, 1, ts[0].BooksComplete)
}

func TestProgressService_ClearAll(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.store, f.observer)
	ctx := context.Background()

	require.NoError(t, svc.SetBookCompletion(ctx, "Jude", true))
	require.NoError(t, svc.ClearAll(ctx))
	assert.Equal(t, 0, svc.Summary(ctx).Completed)
	assert.Equal(t, 1, f.observer.last().Fields["cleared"])
}

func TestProgressService_PersistsEveryMutation(t *testing.T) {
	f := newFixture(t)
	svc := NewProgressService(f.store, f.observer)
	ctx := context.Background()

	_, err := svc.ToggleChapter(ctx, "Ruth", 1)
	require.NoError(t, err)
	require.NoError(t, svc.SetBookCompletion(ctx, "Jonah", true))
	_, err = svc.ToggleChapter(ctx, "Jonah", 2)
	require.NoError(t, err)

	slot, err := f.slots.Get(ctx, ProgressSlot)
	require.NoError(t, err)
	stored, _, err := transfer.Decode([]byte(slot.Value))
	require.NoError(t, err)
	if diff := cmp.Diff(svc.Snapshot(ctx), stored); diff != "" {
		t.Errorf("slot differs from memory (-mem +slot):\n%s", diff)
	}

	recent, err := f.activity.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, domain.ActivityToggleChapter, recent[0].Kind)
	assert.Equal(t, "Jonah", recent[0].Book)
	assert.Equal(t, 2, recent[0].Chapter)
	assert.False(t, recent[0].Completed)
	assert.Equal(t, 4, recent[0].KeyCount)
	assert.Equal(t, domain.ActivitySetBook, recent[1].Kind)

	// A fresh store over the same database sees the same progress.
	reopened := openFixture(t, f.db, testutil.NewTestUoW(f.db))
	if diff := cmp.Diff(svc.Snapshot(ctx), reopened.store.Snapshot()); diff != "" {
		t.Errorf("reopen mismatch (-before +after):\n%s", diff)
	}
}

func TestProgressService_WriteFailureRollsBack(t *testing.T) {
	tests := []struct {
		name   string
		failOn int32
	}{
		{"slot write fails", 1},
		{"activity write fails", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := testutil.NewTestDB(t)
			ctx := context.Background()

			seed := openFixture(t, database, testutil.NewTestUoW(database))
			_, err := NewProgressService(seed.store).ToggleChapter(ctx, "Ruth", 1)
			require.NoError(t, err)

			injected := errors.New("injected write failure")
			f := openFixture(t, database, &testutil.FailOnNthExecUoW{DB: database, FailOn: tt.failOn, Err: injected})
			svc := NewProgressService(f.store, f.observer)

			_, err = svc.ToggleChapter(ctx, "Ruth", 2)
			require.ErrorIs(t, err, injected)
			assert.False(t, f.observer.last().Success)

			assert.Equal(t, testutil.Progress("Ruth-1"), svc.Snapshot(ctx), "memory unchanged")
			slot, err := f.slots.Get(ctx, ProgressSlot)
			require.NoError(t, err)
			assert.JSONEq(t, `{"Ruth-1":true}`, slot.Value, "storage unchanged")
			n, err := f.activity.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestProgressService_BookUnknown(t *testing.T) {
	f := newFixture(t)
	_, err := NewProgressService(f.store).Book(context.Background(), "Tobit")
	assert.ErrorIs(t, err, ErrUnknownBook)
}
