package cli

import (
	"testing"

	"github.com/alexanderramin/bibletrack/internal/teatest"
)

// TestDriver wraps teatest.Driver with accessors for appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the TUI for app at 120x40 and drains Init, so the
// book list is loaded when it returns.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) model() appModel {
	d.T.Helper()
	m, ok := d.Model.(appModel)
	if !ok {
		d.T.Fatalf("model is %T, want appModel", d.Model)
	}
	return m
}

// Command focuses the command bar, types line and submits it.
func (d *TestDriver) Command(line string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(line)
	d.PressEnter()
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.model()
	v := m.activeView()
	if v == nil {
		d.T.Fatal("view stack is empty")
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int { return len(d.model().viewStack) }

func (d *TestDriver) State() *SharedState { return d.model().state }

func (d *TestDriver) IsQuitting() bool { return d.Quitting || d.model().quitting }

// LastOutput returns the transient output without ANSI styling.
func (d *TestDriver) LastOutput() string { return stripANSI(d.model().lastOutput) }

func (d *TestDriver) CmdBarFocused() bool {
	m := d.model()
	return m.cmdBar.Focused()
}

// BookList returns the root book list view.
func (d *TestDriver) BookList() *bookListView {
	d.T.Helper()
	m := d.model()
	v, ok := m.viewStack[0].(*bookListView)
	if !ok {
		d.T.Fatalf("root view is %T, want *bookListView", m.viewStack[0])
	}
	return v
}
