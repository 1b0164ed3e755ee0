package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/bibletrack/internal/config"
	"github.com/alexanderramin/bibletrack/internal/db"
	"github.com/alexanderramin/bibletrack/internal/repository"
	"github.com/alexanderramin/bibletrack/internal/service"
	"github.com/alexanderramin/bibletrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) }

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB. Exports land in a
// per-test temp directory.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	backend := service.NewSlotBackend(repository.NewSQLiteSlotRepo(database), uow)
	store := service.OpenProgressStore(context.Background(), backend)

	cfg := config.DefaultConfig()
	cfg.DBPath = db.MemoryPath
	cfg.ExportDir = t.TempDir()

	return &App{
		Progress:      service.NewProgressService(store),
		Transfer:      service.NewTransferService(store, fixedNow),
		Activity:      service.NewActivityService(repository.NewSQLiteActivityRepo(database)),
		Config:        cfg,
		In:            strings.NewReader(""),
		Out:           &bytes.Buffer{},
		IsInteractive: func() bool { return false },
		Now:           fixedNow,
	}
}

// runCmd executes args against app with input fed to any prompt and
// returns the ANSI-stripped output.
func runCmd(t *testing.T, app *App, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app.In = strings.NewReader(input)
	app.Out = &out

	root := NewRootCmd(app)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(out.String()), err
}

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
