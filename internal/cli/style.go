package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vvka-141/fswrap/internal/config"
)

// Color palette - keeping it minimal and accessible.
var (
	colorDirectory = lipgloss.Color("39")  // Blue
	colorLabel     = lipgloss.Color("245") // Gray
	colorHidden    = lipgloss.Color("240") // Dark gray
	colorReadOnly  = lipgloss.Color("214") // Orange
)

type styles struct {
	dir      lipgloss.Style
	label    lipgloss.Style
	hidden   lipgloss.Style
	readOnly lipgloss.Style
}

// newStyles builds styles rendered for w. The color decision is made by
// useColor, so the renderer's own terminal detection is overridden.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
		plain := r.NewStyle()
		return styles{dir: plain, label: plain, hidden: plain, readOnly: plain}
	}
	r.SetColorProfile(termenv.ANSI256)
	return styles{
		dir:      r.NewStyle().Foreground(colorDirectory).Bold(true),
		label:    r.NewStyle().Foreground(colorLabel),
		hidden:   r.NewStyle().Foreground(colorHidden),
		readOnly: r.NewStyle().Foreground(colorReadOnly),
	}
}

// useColor resolves a color mode for output written to w.
// auto enables color only when w is a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
