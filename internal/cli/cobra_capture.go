package cli

import (
	"strings"
)

// captureCobraOutput runs args through a fresh command tree and returns
// everything it printed. Input is empty, so any y/N prompt declines
// instead of reading from the terminal under bubbletea.
func captureCobraOutput(app *App, args []string) string {
	var buf strings.Builder

	root := NewRootCmd(app)
	root.SetIn(strings.NewReader(""))
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(errorOutput(err))
	}
	return strings.TrimRight(buf.String(), "\n")
}
