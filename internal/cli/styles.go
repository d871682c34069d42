package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// statusStyles colors status labels when writing to a terminal.
type statusStyles struct {
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Muted lipgloss.Style
	Title lipgloss.Style
}

func newStatusStyles(out io.Writer) statusStyles {
	if !isTerminal(out) {
		plain := lipgloss.NewStyle()
		return statusStyles{OK: plain, Warn: plain, Error: plain, Muted: plain, Title: plain}
	}
	return statusStyles{
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("#39ff14")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb000")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0055")).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7f7f")),
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true),
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s statusStyles) ok(text string) string {
	return s.OK.Render("OK") + " " + text
}

func (s statusStyles) fail(text string) string {
	return s.Error.Render("ERR") + " " + text
}

func (s statusStyles) warn(text string) string {
	return s.Warn.Render("WARN") + " " + text
}

func (s statusStyles) yesNo(value bool) string {
	if value {
		return s.OK.Render("yes")
	}
	return s.Error.Render("no")
}
