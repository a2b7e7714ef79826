package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the specdoc banner followed by a one-line subtitle.
func PrintBanner(w io.Writer, subtitle string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ___ _ __   ___  ___ __| | ___   ___", "#818cf8"},
		{" / __| '_ \\ / _ \\/ __/ _` |/ _ \\ / __|", "#a78bfa"},
		{" \\__ \\ |_) |  __/ (_| (_| | (_) | (__", "#c084fc"},
		{" |___/ .__/ \\___|\\___\\__,_|\\___/ \\___|", "#e879f9"},
		{"     |_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if subtitle != "" {
		fmt.Fprintln(w, termenv.String("  "+subtitle).Faint())
	}
	fmt.Fprintln(w)
}
