package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/bibletrack/internal/config"
	"github.com/alexanderramin/bibletrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and I/O that CLI commands and the TUI run against.
type App struct {
	Progress service.ProgressService
	Transfer service.TransferService
	Activity service.ActivityService
	Config   *config.Config

	// Connect opens storage and fills the services from app.Config. It runs
	// before the first command when the services are not already set.
	Connect func(ctx context.Context, app *App) (io.Closer, error)

	// RunTUI starts the interactive program. Nil means the bubbletea default.
	RunTUI func(app *App) error

	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool
	Now           func() time.Time

	closer io.Closer
}

// NewRootCmd creates the top-level "bibletrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, dbPath string

	root := &cobra.Command{
		Use:          "bibletrack",
		Short:        "Track Bible reading progress chapter by chapter",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var override *string
			if cmd.Flags().Changed("db") {
				override = &dbPath
			}
			return app.connect(cmd.Context(), configPath, override)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return app.startTUI()
			}
			return runStatus(cmd, app)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $"+config.EnvConfig+" or ~/.bibletrack/config.yaml)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")

	if app.In != nil {
		root.SetIn(app.In)
	}
	if app.Out != nil {
		root.SetOut(app.Out)
	}

	root.AddCommand(
		newStatusCmd(app),
		newBooksCmd(app),
		newBookCmd(app),
		newToggleCmd(app),
		newMarkCmd(app, true),
		newMarkCmd(app, false),
		newExportCmd(app),
		newImportCmd(app),
		newResetCmd(app),
		newHistoryCmd(app),
		newTUICmd(app),
		newConfigCmd(),
	)

	return root
}

// Close releases the storage opened by Connect.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *App) connect(ctx context.Context, configPath string, dbOverride *string) error {
	if a.Progress != nil {
		return nil
	}
	if a.Connect == nil {
		return errors.New("no storage configured")
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbOverride != nil {
		cfg.DBPath = *dbOverride
	}
	a.Config = cfg

	closer, err := a.Connect(ctx, a)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	a.closer = closer
	return nil
}

func (a *App) settings() *config.Config {
	if a.Config == nil {
		return config.DefaultConfig()
	}
	return a.Config
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) startTUI() error {
	if a.RunTUI != nil {
		return a.RunTUI(a)
	}
	return runTUI(a)
}
