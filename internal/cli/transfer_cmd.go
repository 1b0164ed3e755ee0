package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/alexanderramin/bibletrack/internal/transfer"
	"github.com/spf13/cobra"
)

// errImportFormat is returned for import files that are not a JSON object.
var errImportFormat = errors.New("import failed: file format error")

func newExportCmd(app *App) *cobra.Command {
	var dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write progress to bible-progress-<date>.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if stdout {
				return app.Transfer.ExportTo(ctx, cmd.OutOrStdout())
			}
			if !cmd.Flags().Changed("dir") {
				dir = app.settings().ExportDir
			}
			path, err := app.Transfer.Export(ctx, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExported(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the export file (default from config)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the JSON to stdout instead of a file")
	cmd.MarkFlagsMutuallyExclusive("dir", "stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace progress with the contents of an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			preview, err := app.Transfer.ReadImport(ctx, args[0])
			if err != nil {
				return importError(err)
			}
			fmt.Fprint(out, formatter.FormatImportPreview(preview))

			if !yes && !confirm(cmd, formatter.ImportConfirmPrompt(preview)) {
				fmt.Fprintln(out, formatter.Dim("Cancelled."))
				return nil
			}
			if err := app.Transfer.ApplyImport(ctx, preview); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatImported(preview))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all reading progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes && !confirm(cmd, clearConfirmPrompt) {
				fmt.Fprintln(out, formatter.Dim("Cancelled."))
				return nil
			}
			if err := app.Progress.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.StyleYellow.Render("Cleared all progress."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

const clearConfirmPrompt = "Clear all reading progress? This cannot be undone."

// isFormatError reports whether err comes from an unparseable import file.
func isFormatError(err error) bool {
	return errors.Is(err, transfer.ErrInvalidFormat) || errors.Is(err, transfer.ErrNotMapping)
}

func importError(err error) error {
	if isFormatError(err) {
		return fmt.Errorf("%w: %w", errImportFormat, err)
	}
	return err
}
