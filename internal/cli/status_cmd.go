package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall and per-testament progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app)
		},
	}
}

func runStatus(cmd *cobra.Command, app *App) error {
	out, err := statusText(cmd.Context(), app)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func statusText(ctx context.Context, app *App) (string, error) {
	recent, err := app.Activity.Recent(ctx, app.settings().ActivityLimit)
	if err != nil {
		return "", fmt.Errorf("loading activity: %w", err)
	}
	return formatter.FormatStatus(formatter.StatusData{
		Summary:    app.Progress.Summary(ctx),
		Testaments: app.Progress.Testaments(ctx),
		Recent:     recent,
		Now:        app.now(),
	}), nil
}
