package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// listRow is one line of the book list: a book, or one chapter of an
// expanded book when chapter > 0.
type listRow struct {
	book     view.BookProgress
	chapter  int
	done     bool
	expanded bool
}

func (r listRow) isBook() bool { return r.chapter == 0 }

// rowKey identifies a row across reloads so the cursor can follow it.
type rowKey struct {
	book    string
	chapter int
}

func (r listRow) key() rowKey { return rowKey{book: r.book.Book.Name, chapter: r.chapter} }

// bookListLoadedMsg signals that book list data has been loaded.
type bookListLoadedMsg struct {
	books    []view.BookProgress
	progress domain.ProgressMap
}

// bookListView lists the filtered books with expandable chapter rows.
type bookListView struct {
	state    *SharedState
	books    []view.BookProgress
	progress domain.ProgressMap
	rows     []listRow
	cursor   int
	loading  bool
	vp       viewport.Model
}

func newBookListView(state *SharedState) *bookListView {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{} // the cursor drives scrolling
	return &bookListView{
		state:   state,
		loading: true,
		vp:      vp,
	}
}

func (v *bookListView) ID() ViewID    { return ViewBookList }
func (v *bookListView) Title() string { return "Books" }

func (v *bookListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle read")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "testament")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unread")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show all")),
		key.NewBinding(key.WithKeys("E", "C"), key.WithHelp("E/C", "expand/collapse all")),
		key.NewBinding(key.WithKeys("e", "i"), key.WithHelp("e/i", "export/import")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (v *bookListView) Init() tea.Cmd {
	return v.loadBooks()
}

func (v *bookListView) loadBooks() tea.Cmd {
	app := v.state.App
	f := v.state.Filter
	return func() tea.Msg {
		ctx := context.Background()
		return bookListLoadedMsg{
			books:    app.Progress.Books(ctx, f),
			progress: app.Progress.Snapshot(ctx),
		}
	}
}

func (v *bookListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bookListLoadedMsg:
		v.loading = false
		v.books = msg.books
		v.progress = msg.progress
		v.rebuild()
		return v, nil

	case refreshViewMsg:
		return v, v.loadBooks()

	case tea.WindowSizeMsg:
		v.syncViewport()
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *bookListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "pgup":
		v.moveCursor(-v.state.ContentHeight())
	case "pgdown":
		v.moveCursor(v.state.ContentHeight())
	case "home", "g":
		v.moveCursor(-len(v.rows))
	case "end", "G":
		v.moveCursor(len(v.rows))
	case "enter":
		if row, ok := v.current(); ok {
			v.setExpanded(row, !v.state.Expanded.IsExpanded(row.book.Book.Name))
		}
	case "right", "l":
		if row, ok := v.current(); ok {
			v.setExpanded(row, true)
		}
	case "left", "h":
		if row, ok := v.current(); ok {
			v.setExpanded(row, false)
		}
	case " ", "space":
		if row, ok := v.current(); ok {
			return v.toggle(row)
		}
	case "f":
		v.state.Filter.Testament = v.state.Filter.Testament.Next()
		return v.loadBooks()
	case "u":
		v.state.Filter.UnreadOnly = !v.state.Filter.UnreadOnly
		return v.loadBooks()
	case "a":
		v.state.Filter.Reset()
		return v.loadBooks()
	case "E":
		// Books hidden by the filter are expanded too.
		v.state.Expanded.ExpandAll(catalog.AllBooks())
		v.rebuild()
	case "C":
		v.state.Expanded.CollapseAll()
		v.rebuild()
	case "x":
		return execClearAll(v.state)
	case "e":
		return execExport(v.state)
	case "i":
		return execImport(v.state)
	}
	return nil
}

// toggle flips a chapter, or on a book row marks the whole book read
// (or unread when it is already complete).
func (v *bookListView) toggle(row listRow) tea.Cmd {
	progress := v.state.App.Progress
	name := row.book.Book.Name
	if row.isBook() {
		completed := !row.book.Done()
		return actionCmd(func() (string, error) {
			return "", progress.SetBookCompletion(context.Background(), name, completed)
		})
	}
	chapter := row.chapter
	return actionCmd(func() (string, error) {
		_, err := progress.ToggleChapter(context.Background(), name, chapter)
		return "", err
	})
}

func (v *bookListView) setExpanded(row listRow, expanded bool) {
	name := row.book.Book.Name
	if v.state.Expanded.IsExpanded(name) == expanded {
		return
	}
	v.state.Expanded.Set(name, expanded)
	v.rebuildAt(rowKey{book: name})
}

func (v *bookListView) current() (listRow, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return listRow{}, false
	}
	return v.rows[v.cursor], true
}

func (v *bookListView) moveCursor(delta int) {
	if len(v.rows) == 0 {
		return
	}
	v.cursor = max(0, min(v.cursor+delta, len(v.rows)-1))
	v.syncViewport()
}

// rebuild flattens books into rows, keeping the cursor on the same row
// when it still exists.
func (v *bookListView) rebuild() {
	if row, ok := v.current(); ok {
		v.rebuildAt(row.key())
		return
	}
	v.rebuildAt(rowKey{})
}

func (v *bookListView) rebuildAt(target rowKey) {
	v.rows = v.rows[:0]
	next := -1
	for _, b := range v.books {
		expanded := v.state.Expanded.IsExpanded(b.Book.Name)
		book := listRow{book: b, expanded: expanded}
		if book.key() == target {
			next = len(v.rows)
		}
		v.rows = append(v.rows, book)
		if !expanded {
			continue
		}
		for ch, done := range b.Chapters(v.progress) {
			r := listRow{book: b, chapter: ch + 1, done: done}
			if r.key() == target {
				next = len(v.rows)
			}
			v.rows = append(v.rows, r)
		}
	}
	if next >= 0 {
		v.cursor = next
	}
	v.cursor = max(0, min(v.cursor, len(v.rows)-1))
	v.syncViewport()
}

// syncViewport sizes the viewport and scrolls it so the cursor is visible.
func (v *bookListView) syncViewport() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()

	lines := make([]string, len(v.rows))
	for i, r := range v.rows {
		lines[i] = v.renderRow(r, i == v.cursor)
	}
	v.vp.SetContent(strings.Join(lines, "\n"))

	switch {
	case v.cursor < v.vp.YOffset:
		v.vp.SetYOffset(v.cursor)
	case v.cursor >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(v.cursor - v.vp.Height + 1)
	}
}

func (v *bookListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading books...")
	}
	if len(v.rows) == 0 {
		return "\n  " + formatter.StyleYellow.Render(formatter.NoBooksMatch) + "  " +
			formatter.FilterChips(v.state.Filter) + "\n  " +
			formatter.Dim("Press a to show all books.")
	}
	return v.vp.View()
}

func (v *bookListView) renderRow(r listRow, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	if !r.isBook() {
		mark := formatter.Dim("○")
		label := formatter.Dim(fmt.Sprintf("Chapter %d", r.chapter))
		if r.done {
			mark = formatter.StyleGreen.Render("✓")
			label = formatter.StyleFg.Render(fmt.Sprintf("Chapter %d", r.chapter))
		}
		return fmt.Sprintf("%s      %s %s", cursor, mark, label)
	}

	indicator := "▸"
	if r.expanded {
		indicator = "▾"
	}
	b := r.book
	name := fmt.Sprintf("%-16s", b.Book.Name)
	if b.Done() {
		name = formatter.StyleGreen.Render(name)
	} else {
		name = formatter.StyleFg.Render(name)
	}
	count := formatter.Dim(fmt.Sprintf("%3d/%-3d", b.Completed, b.Book.Chapters))
	return fmt.Sprintf("%s%s %s %s %s %s %s",
		cursor,
		formatter.Dim(indicator),
		name,
		formatter.TestamentBadge(b.Book.Testament),
		count,
		formatter.RenderCompactBar(b.Percent/100, 16, false),
		formatter.Dim(formatter.FormatPercent(b.Percent)),
	)
}
