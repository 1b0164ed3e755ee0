package cli

import (
	"fmt"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent progress changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = app.settings().ActivityLimit
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			ctx := cmd.Context()
			acts, err := app.Activity.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("loading activity: %w", err)
			}
			total, err := app.Activity.Total(ctx)
			if err != nil {
				return fmt.Errorf("counting activity: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(acts, total, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries (default from config)")
	return cmd
}
