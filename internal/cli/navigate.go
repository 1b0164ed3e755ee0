package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation and result messages exchanged between views and the appModel.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// cmdOutputMsg carries text to display transiently in the content area.
type cmdOutputMsg struct {
	output string
}

// actionResultMsg reports a finished mutation. The appModel shows the
// output (or the error) and refreshes every view.
type actionResultMsg struct {
	output string
	err    error
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// actionCmd runs fn off the update loop and reports its outcome as an
// actionResultMsg.
func actionCmd(fn func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := fn()
		return actionResultMsg{output: out, err: err}
	}
}
