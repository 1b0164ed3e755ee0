package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_AppendAndList(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	a1 := testutil.NewTestActivity(domain.ActivityToggleChapter,
		testutil.WithActivityBook("Ruth", 2),
		testutil.WithCompleted(true),
		testutil.WithKeyCount(1),
		testutil.WithActivityAt(base))
	a2 := testutil.NewTestActivity(domain.ActivitySetBook,
		testutil.WithActivityBook("Jonah", 0),
		testutil.WithKeyCount(5),
		testutil.WithActivityAt(base.Add(time.Minute)))
	a3 := testutil.NewTestActivity(domain.ActivityClearAll,
		testutil.WithActivityAt(base.Add(2*time.Minute)))

	for _, a := range []*domain.Activity{a1, a2, a3} {
		require.NoError(t, repo.Append(ctx, a))
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a3.ID, got[0].ID)
	assert.Equal(t, a2.ID, got[1].ID)
	assert.Equal(t, domain.ActivitySetBook, got[1].Kind)
	assert.Equal(t, "Jonah", got[1].Book)
	assert.Equal(t, 5, got[1].KeyCount)

	all, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	last := all[2]
	assert.Equal(t, "Ruth", last.Book)
	assert.Equal(t, 2, last.Chapter)
	assert.True(t, last.Completed)
	assert.True(t, base.Equal(last.At))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestActivityRepo_SameInstantKeepsInsertOrder(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	first := testutil.NewTestActivity(domain.ActivityToggleChapter, testutil.WithActivityAt(at))
	second := testutil.NewTestActivity(domain.ActivityToggleChapter, testutil.WithActivityAt(at))
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestActivityRepo_AppendAssignsID(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	a := &domain.Activity{Kind: domain.ActivityImport, At: time.Now()}

	require.NoError(t, repo.Append(context.Background(), a))
	assert.Len(t, a.ID, 36)
}

func TestActivityRepo_RejectsUnknownKind(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	a := testutil.NewTestActivity("rename_book")

	err := repo.Append(context.Background(), a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid activity kind")
}

func TestActivityRepo_NonPositiveLimit(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	got, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
