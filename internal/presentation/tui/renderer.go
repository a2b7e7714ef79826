package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// On a terminal the style follows the background color; otherwise plain
// "notty" output is produced so pipes and files stay free of escape codes.
// A width of zero uses the terminal width, or 80 columns.
func NewRenderer(width int) (func(string) (string, error), error) {
	interactive := IsTerminal(os.Stdout)
	if width <= 0 {
		width = 80
		if interactive {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
	}

	style := glamour.WithStandardStyle("notty")
	if interactive {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
