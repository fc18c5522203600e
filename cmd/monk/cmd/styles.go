package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles holds the output styles for one writer. Colors are dropped when the
// writer is not a color terminal.
type styles struct {
	title lipgloss.Style
	path  lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
	kind  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		path:  r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(colorOK).Bold(true),
		fail:  r.NewStyle().Foreground(colorError).Bold(true),
		muted: r.NewStyle().Foreground(colorMuted),
		kind:  r.NewStyle().Foreground(colorPrimary),
	}
}
