package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/bibletrack/internal/cli"
	"github.com/alexanderramin/bibletrack/internal/db"
	"github.com/alexanderramin/bibletrack/internal/repository"
	"github.com/alexanderramin/bibletrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Connect: connect,
		In:      os.Stdin,
		Out:     os.Stdout,
		Now:     time.Now,
	}
	defer app.Close()

	// Detect interactive terminal for the bare entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// connect opens the database named by the loaded config and wires the
// services onto app.
func connect(ctx context.Context, app *cli.App) (io.Closer, error) {
	cfg := app.Config

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.SlogLevel())
	}

	// Wire repositories
	slotRepo := repository.NewSQLiteSlotRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)

	// Wire unit of work for transactional writes
	uow := db.NewSQLiteUnitOfWork(database)

	backend := service.NewSlotBackend(slotRepo, uow)
	store := service.OpenProgressStore(ctx, backend, observer)

	app.Progress = service.NewProgressService(store, observer)
	app.Transfer = service.NewTransferService(store, app.Now, observer)
	app.Activity = service.NewActivityService(activityRepo)
	return database, nil
}
