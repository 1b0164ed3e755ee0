package cli

import (
	"github.com/alexanderramin/bibletrack/internal/view"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Transient book-list state. Never persisted.
	Filter   view.Filter
	Expanded view.Expansion

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{App: app}
	s.Filter.Reset()
	return s
}

// ContentHeight returns the available height for view content,
// accounting for the header (3 lines: title, progress, separator),
// the status bar (2 lines: separator + hints) and the command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 6
	if h < 1 {
		return 1
	}
	return h
}
