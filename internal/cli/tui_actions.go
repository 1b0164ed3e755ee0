package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/alexanderramin/bibletrack/internal/service"
	"github.com/alexanderramin/bibletrack/internal/transfer"
	tea "github.com/charmbracelet/bubbletea"
)

// execClearAll asks for confirmation and clears every chapter if accepted.
func execClearAll(state *SharedState) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(clearConfirmPrompt, "", &confirmed)
	return startWizardCmd(state, "Clear progress", form, func() tea.Cmd {
		if !confirmed {
			return outputCmd(formatter.Dim("Cancelled."))
		}
		return actionCmd(func() (string, error) {
			if err := state.App.Progress.ClearAll(context.Background()); err != nil {
				return "", err
			}
			return formatter.StyleYellow.Render("Cleared all progress."), nil
		})
	})
}

// execExport writes the export file into the configured export directory.
func execExport(state *SharedState) tea.Cmd {
	app := state.App
	return actionCmd(func() (string, error) {
		path, err := app.Transfer.Export(context.Background(), app.settings().ExportDir)
		if err != nil {
			return "", err
		}
		return formatter.FormatExported(path), nil
	})
}

// execImport asks for a file path, then hands off to execImportFile.
func execImport(state *SharedState) tea.Cmd {
	var path string
	app := state.App
	placeholder := filepath.Join(app.settings().ExportDir, transfer.ExportFileName(app.now()))
	form := wizardInputPath("Import progress from", placeholder, &path)
	return startWizardCmd(state, "Import", form, func() tea.Cmd {
		return execImportFile(state, strings.TrimSpace(path))
	})
}

// execImportFile parses path and, when it is a valid progress file, asks
// for confirmation before replacing the store. A format error aborts with
// the store untouched.
func execImportFile(state *SharedState, path string) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		preview, err := app.Transfer.ReadImport(context.Background(), path)
		if err != nil {
			return actionResultMsg{err: importError(err)}
		}
		return pushViewMsg{view: importConfirmView(state, preview)}
	}
}

func importConfirmView(state *SharedState, preview *service.ImportPreview) View {
	var confirmed bool
	form := wizardConfirm(formatter.ImportConfirmPrompt(preview), formatter.FormatImportPreview(preview), &confirmed)
	return newWizardView(state, "Confirm import", form, func() tea.Cmd {
		if !confirmed {
			return outputCmd(formatter.Dim("Cancelled."))
		}
		return actionCmd(func() (string, error) {
			if err := state.App.Transfer.ApplyImport(context.Background(), preview); err != nil {
				return "", err
			}
			return formatter.FormatImported(preview), nil
		})
	})
}

// errorOutput renders err for the content area. Import format errors use
// the fixed user-facing message.
func errorOutput(err error) string {
	if isFormatError(err) {
		return formatter.StyleRed.Render(formatter.ImportFailed)
	}
	return formatter.StyleRed.Render("Error: " + err.Error())
}
