package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/service"
)

// ImportFailed is the user-facing message for an unreadable import file.
const ImportFailed = "Import failed: file format error"

// FormatImportPreview summarizes what confirming an import will do.
func FormatImportPreview(p *service.ImportPreview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("File:"), p.Path)
	fmt.Fprintf(&b, "%s %s\n", Dim("Chapters:"), StyleGreen.Render(fmt.Sprint(p.Chapters())))
	if p.UnknownKeys > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("Unrecognized keys (kept, not shown):"), StyleYellow.Render(fmt.Sprint(p.UnknownKeys)))
	}
	if p.Stats.Ignored > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("Entries not set to true (skipped):"), StyleYellow.Render(fmt.Sprint(p.Stats.Ignored)))
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Replaces current progress:"), StyleRed.Render(Plural(p.Replacing, "key")))
	return b.String()
}

// ImportConfirmPrompt is the question asked before an import replaces progress.
func ImportConfirmPrompt(p *service.ImportPreview) string {
	return fmt.Sprintf("Replace your progress with %s from %s?", Plural(len(p.Progress), "key"), p.Path)
}

// FormatImported reports a completed import.
func FormatImported(p *service.ImportPreview) string {
	return StyleGreen.Render("Imported "+Plural(p.Chapters(), "chapter")) + Dim(" from "+p.Path)
}

// FormatExported reports where an export was written.
func FormatExported(path string) string {
	return StyleGreen.Render("Exported progress to ") + path
}
