package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/alexanderramin/bibletrack/internal/config"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/service"
	"github.com/alexanderramin/bibletrack/internal/transfer"
	"github.com/alexanderramin/bibletrack/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_EmptyStore(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "BIBLE READING PROGRESS")
	assert.Contains(t, out, "0 read")
	assert.Contains(t, out, "1189 remaining")
	assert.Contains(t, out, "of 1189 chapters")
	assert.NotContains(t, out, "RECENT ACTIVITY")
}

func TestStatusCmd_ShowsRecentActivity(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Progress.ToggleChapter(ctx, "John", 3)
	require.NoError(t, err)

	out, err := runCmd(t, app, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "1 read")
	assert.Contains(t, out, "1188 remaining")
	assert.Contains(t, out, "Read John 3")
}

func TestRootCmd_NonInteractiveShowsStatus(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "")
	require.NoError(t, err)
	assert.Contains(t, out, "BIBLE READING PROGRESS")
}

func TestRootCmd_InteractiveStartsTUI(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	started := false
	app.RunTUI = func(*App) error {
		started = true
		return nil
	}

	_, err := runCmd(t, app, "")
	require.NoError(t, err)
	assert.True(t, started)
}

func TestTUICmd_UsesRunTUI(t *testing.T) {
	app := testApp(t)
	started := false
	app.RunTUI = func(*App) error {
		started = true
		return nil
	}

	_, err := runCmd(t, app, "", "tui")
	require.NoError(t, err)
	assert.True(t, started)
}

func TestToggleCmd(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "", "toggle", "john", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "John 3 marked read")
	assert.True(t, app.Progress.Snapshot(context.Background()).Done("John-3"))

	out, err = runCmd(t, app, "", "toggle", "John", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "John 3 marked unread")
	assert.False(t, app.Progress.Snapshot(context.Background()).Done("John-3"))
}

func TestToggleCmd_MultiWordBook(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "", "toggle", "Song", "of", "Solomon", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Song of Solomon 2 marked read")
	assert.True(t, app.Progress.Snapshot(context.Background()).Done("Song of Solomon-2"))
}

func TestToggleCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "unknown book", args: []string{"toggle", "Hezekiah", "1"}, wantErr: service.ErrUnknownBook},
		{name: "chapter too high", args: []string{"toggle", "Ruth", "5"}, wantErr: service.ErrChapterOutOfRange},
		{name: "chapter zero", args: []string{"toggle", "Ruth", "0"}, wantErr: service.ErrChapterOutOfRange},
		{name: "chapter not a number", args: []string{"toggle", "Ruth", "one"}, wantMsg: "invalid chapter"},
		{name: "missing chapter", args: []string{"toggle", "Ruth"}, wantMsg: "requires at least 2 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t)
			_, err := runCmd(t, app, "", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, app.Progress.Snapshot(context.Background()))
		})
	}
}

func TestMarkAndUnmarkCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	out, err := runCmd(t, app, "", "mark", "ruth")
	require.NoError(t, err)
	assert.Contains(t, out, "Ruth")
	assert.Contains(t, out, "4 of 4 chapters read")
	assert.Equal(t, 4, app.Progress.Summary(ctx).Completed)

	out, err = runCmd(t, app, "", "unmark", "Ruth")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 4 chapters read")
	assert.Equal(t, 0, app.Progress.Summary(ctx).Completed)
}

func TestMarkCmd_UnknownBook(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "", "mark", "Maccabees")
	assert.ErrorIs(t, err, service.ErrUnknownBook)
}

func TestBookCmd_ShowsGrid(t *testing.T) {
	app := testApp(t)
	_, err := app.Progress.ToggleChapter(context.Background(), "1 Samuel", 31)
	require.NoError(t, err)

	out, err := runCmd(t, app, "", "book", "1", "samuel")
	require.NoError(t, err)
	assert.Contains(t, out, "1 Samuel")
	assert.Contains(t, out, "Old Testament")
	assert.Contains(t, out, "1 of 31 chapters read")
	assert.Contains(t, out, "31")
}

func TestBooksCmd_AllBooks(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "", "books")
	require.NoError(t, err)
	assert.Contains(t, out, "Genesis")
	assert.Contains(t, out, "Revelation")
	assert.NotContains(t, out, "[All]")
}

func TestBooksCmd_Filters(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Progress.SetBookCompletion(context.Background(), "Jude", true))

	out, err := runCmd(t, app, "", "books", "--testament", "new", "--unread")
	require.NoError(t, err)
	assert.Contains(t, out, "[New Testament]")
	assert.Contains(t, out, "[Unread only]")
	assert.Contains(t, out, "Revelation")
	assert.NotContains(t, out, "Jude")
	assert.NotContains(t, out, "Genesis")
}

func TestBooksCmd_NoMatch(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	for _, b := range catalog.ByTestament(domain.TestamentOld) {
		require.NoError(t, app.Progress.SetBookCompletion(ctx, b.Name, true))
	}

	out, err := runCmd(t, app, "", "books", "--testament", "ot", "--unread")
	require.NoError(t, err)
	assert.Contains(t, out, "No books match")
	assert.Contains(t, out, "Drop --testament and --unread")
}

func TestBooksCmd_InvalidTestament(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "", "books", "--testament", "apocrypha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--testament")
}

func TestExportCmd_DefaultDir(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Progress.ToggleChapter(ctx, "Ruth", 1)
	require.NoError(t, err)

	out, err := runCmd(t, app, "", "export")
	require.NoError(t, err)

	path := filepath.Join(app.Config.ExportDir, "bible-progress-2026-10-18.json")
	assert.Contains(t, out, "bible-progress-2026-10-18.json")

	got, stats, err := transfer.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, domain.ProgressMap{"Ruth-1": true}, got)
}

func TestExportCmd_DirFlag(t *testing.T) {
	app := testApp(t)
	dir := filepath.Join(t.TempDir(), "exports")

	_, err := runCmd(t, app, "", "export", "--dir", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "bible-progress-2026-10-18.json"))
	assert.NoError(t, err)
}

func TestExportCmd_Stdout(t *testing.T) {
	app := testApp(t)
	_, err := app.Progress.ToggleChapter(context.Background(), "Ruth", 1)
	require.NoError(t, err)

	out, err := runCmd(t, app, "", "export", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, `{"Ruth-1":true}`, strings.TrimSpace(out))
}

func TestExportCmd_DirAndStdoutExclusive(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "", "export", "--stdout", "--dir", t.TempDir())
	assert.Error(t, err)
}

func TestImportCmd_Confirmed(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Progress.ToggleChapter(ctx, "Ruth", 1)
	require.NoError(t, err)
	path := writeImportFile(t, `{"Genesis-1": true, "Genesis-2": true}`)

	out, err := runCmd(t, app, "y\n", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Replaces current progress: 1 key")
	assert.Contains(t, out, "Replace your progress with 2 keys from")
	assert.Contains(t, out, "Imported 2 chapters")

	assert.Equal(t, domain.ProgressMap{"Genesis-1": true, "Genesis-2": true}, app.Progress.Snapshot(ctx))
}

func TestImportCmd_Declined(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Progress.ToggleChapter(ctx, "Ruth", 1)
	require.NoError(t, err)
	path := writeImportFile(t, `{"Genesis-1": true}`)

	for _, input := range []string{"n\n", "\n", ""} {
		out, err := runCmd(t, app, input, "import", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Cancelled.")
		assert.Equal(t, domain.ProgressMap{"Ruth-1": true}, app.Progress.Snapshot(ctx))
	}
}

func TestImportCmd_YesKeepsUnknownKeys(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	path := writeImportFile(t, `{"Genesis-1": true, "NotABook-5": true, "Exodus-1": false}`)

	out, err := runCmd(t, app, "", "import", "--yes", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Unrecognized keys (kept, not shown): 1")
	assert.Contains(t, out, "Entries not set to true (skipped): 1")

	snap := app.Progress.Snapshot(ctx)
	assert.True(t, snap.Done("Genesis-1"))
	assert.True(t, snap.Done("NotABook-5"))
	assert.False(t, snap.Done("Exodus-1"))
	assert.Equal(t, 2, app.Progress.Summary(ctx).Completed, "total counts every stored key")

	books := app.Progress.Books(ctx, view.Filter{Testament: domain.TestamentOnlyOld})
	require.NotEmpty(t, books)
	assert.Equal(t, "Genesis", books[0].Book.Name)
	assert.Equal(t, 1, books[0].Completed)
}

func TestImportCmd_MalformedLeavesProgress(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `this is not json`},
		{name: "array", content: `["Genesis-1"]`},
		{name: "null", content: `null`},
		{name: "string", content: `"Genesis-1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t)
			ctx := context.Background()
			_, err := app.Progress.ToggleChapter(ctx, "Ruth", 1)
			require.NoError(t, err)

			_, err = runCmd(t, app, "y\n", "import", writeImportFile(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, errImportFormat)
			assert.Equal(t, domain.ProgressMap{"Ruth-1": true}, app.Progress.Snapshot(ctx))
		})
	}
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "y\n", "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, errImportFormat))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResetCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Progress.SetBookCompletion(ctx, "Ruth", true))

	out, err := runCmd(t, app, "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, clearConfirmPrompt)
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, 4, app.Progress.Summary(ctx).Completed)

	out, err = runCmd(t, app, "yes\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared all progress.")
	assert.Empty(t, app.Progress.Snapshot(ctx))
}

func TestResetCmd_Yes(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Progress.SetBookCompletion(ctx, "Jude", true))

	_, err := runCmd(t, app, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Empty(t, app.Progress.Snapshot(ctx))
}

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	out, err := runCmd(t, app, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No activity yet.")

	_, err = app.Progress.ToggleChapter(ctx, "John", 3)
	require.NoError(t, err)
	require.NoError(t, app.Progress.SetBookCompletion(ctx, "Ruth", true))

	out, err = runCmd(t, app, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Read John 3")
	assert.Contains(t, out, "Marked Ruth as read")

	out, err = runCmd(t, app, "", "history", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Marked Ruth as read")
	assert.NotContains(t, out, "Read John 3")
	assert.Contains(t, out, "Showing 1 of 2 changes.")
}

func TestHistoryCmd_InvalidLimit(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "", "history", "--limit", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--limit must be positive")
}

func TestRootCmd_ConnectLoadsConfig(t *testing.T) {
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvExportDir, "")
	t.Setenv(config.EnvLog, "")
	t.Setenv(config.EnvActivityLimit, "")

	backing := testApp(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: /tmp/from-file.db\nactivity_limit: 3\n"), 0o644))

	var seen *config.Config
	closed := false
	app := &App{
		Now: fixedNow,
		Connect: func(_ context.Context, a *App) (io.Closer, error) {
			seen = a.Config
			a.Progress = backing.Progress
			a.Transfer = backing.Transfer
			a.Activity = backing.Activity
			return closerFunc(func() error {
				closed = true
				return nil
			}), nil
		},
	}

	_, err := runCmd(t, app, "", "status", "--config", cfgPath)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "/tmp/from-file.db", seen.DBPath)
	assert.Equal(t, 3, seen.ActivityLimit)

	require.NoError(t, app.Close())
	assert.True(t, closed)
	assert.NoError(t, app.Close())
}

func TestRootCmd_DBFlagOverridesConfig(t *testing.T) {
	t.Setenv(config.EnvDB, "/tmp/from-env.db")

	backing := testApp(t)
	var seen string
	app := &App{
		Now: fixedNow,
		Connect: func(_ context.Context, a *App) (io.Closer, error) {
			seen = a.Config.DBPath
			a.Progress = backing.Progress
			a.Transfer = backing.Transfer
			a.Activity = backing.Activity
			return nil, nil
		},
	}

	_, err := runCmd(t, app, "", "status",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--db", "/tmp/from-flag.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag.db", seen)
}

func TestRootCmd_ConnectError(t *testing.T) {
	app := &App{
		Connect: func(context.Context, *App) (io.Closer, error) {
			return nil, errors.New("disk on fire")
		},
	}

	_, err := runCmd(t, app, "", "status", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening storage: disk on fire")
}

func TestRootCmd_NoStorage(t *testing.T) {
	_, err := runCmd(t, &App{}, "", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no storage configured")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestConfigCmd_ShowsEffectiveSettings(t *testing.T) {
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvExportDir, "/srv/exports")
	t.Setenv(config.EnvLog, "")
	t.Setenv(config.EnvActivityLimit, "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	// No Connect hook: the command must not open storage.
	out, err := runCmd(t, &App{}, "", "config", "--config", path, "--db", "/tmp/flag.db")
	require.NoError(t, err)
	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "db_path: /tmp/flag.db")
	assert.Contains(t, out, "export_dir: /srv/exports")

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "showing settings writes nothing")
}

func TestConfigCmd_WriteSavesFile(t *testing.T) {
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvExportDir, "")
	t.Setenv(config.EnvLog, "")
	t.Setenv(config.EnvActivityLimit, "7")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := runCmd(t, &App{}, "", "config", "--config", path, "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote settings to "+path)

	t.Setenv(config.EnvActivityLimit, "")
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.ActivityLimit)
}
