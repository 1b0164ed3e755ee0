package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const headerBarWidth = 30

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack and a persistent command bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	quitting  bool

	// Transient output shown in place of the active view.
	lastOutput string

	// Scrollable viewport for output that exceeds terminal height.
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:     state,
		cmdBar:    newCommandBar(state),
		outputVP:  vp,
		viewStack: []View{newBookListView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		// Every view keeps its layout in sync, not only the top one.
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.outputActive {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		return m, nil

	case pushViewMsg:
		m.cmdBar.Blur()
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case cmdOutputMsg:
		m.showOutput(msg.output)
		return m, nil

	case actionResultMsg:
		switch {
		case msg.err != nil:
			m.showOutput(errorOutput(msg.err))
		case msg.output != "":
			m.showOutput(msg.output)
		}
		return m, func() tea.Msg { return refreshViewMsg{} }

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.clearOutput()
		return m, msg.nextCmd

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward other messages to command bar (e.g., cursor blink)
	if m.cmdBar.Focused() {
		return m, m.cmdBar.UpdateNonKey(msg)
	}

	return m, m.updateActive(msg)
}

func (m *appModel) updateActive(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// broadcast delivers msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.clearOutput()
		}
		return m, m.cmdBar.Update(msg)
	}

	// While output is shown, scroll keys move it and any other key
	// dismisses it before normal handling.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	// Forms receive every key, including q and ':'.
	if v := m.activeView(); viewCapturesInput(v) {
		return m, m.updateActive(msg)
	}

	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil

	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "?":
		m.showOutput(formatter.FormatHelp())
		return m, nil

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	return m, m.updateActive(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.lastOutput != "" {
		if m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	} else if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.cmdBar.View())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

// renderHeader shows the breadcrumb and filter chips, then the global
// progress, which never reflects the filter.
func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("bibletrack")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	header += "  " + formatter.FilterChips(m.state.Filter)

	summary := m.state.App.Progress.Summary(context.Background())
	progress := formatter.SummaryLine(summary, headerBarWidth)

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + progress + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	switch {
	case m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height:
		hints = append(hints, scrollIndicator(m.outputVP))
		hints = append(hints, formatter.Dim("↑↓ pgup/pgdn: scroll"))
		hints = append(hints, formatter.Dim("esc: dismiss"))
	case m.outputActive:
		hints = append(hints, formatter.Dim("any key: dismiss"))
	default:
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
		}
	}

	if !m.cmdBar.Focused() && !m.outputActive && !viewCapturesInput(m.activeView()) {
		hints = append(hints, formatter.Dim(": command"), formatter.Dim("q: quit"))
	}

	bar := lipgloss.NewStyle().MaxWidth(max(m.state.Width, 20)).Render(strings.Join(hints, "  "))
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

func (m *appModel) showOutput(s string) {
	m.lastOutput = s
	m.outputActive = true
	m.outputVP.SetContent(s)
	m.outputVP.Width = m.state.Width
	m.outputVP.Height = m.state.ContentHeight()
	m.outputVP.GotoTop()
}

// clearOutput dismisses the transient output and deactivates the viewport.
func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap returns a restricted keymap for the output viewport.
// Only arrow and page keys scroll, leaving letters free to dismiss the
// output or trigger shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isOutputScrollKey reports whether msg scrolls the output viewport
// rather than dismissing the output.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}

// viewCapturesInput reports whether v has its own text input and should
// receive all key events, bypassing global bindings.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}
