package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the waterjug banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Shades of blue from the surface down
	lines := []struct {
		text  string
		color string
	}{
		{` __      __   _              _           `, "#7dd3fc"},
		{` \ \    / /_ _| |_ ___ _ _  (_)_  _ __ _ `, "#38bdf8"},
		{`  \ \/\/ / _' |  _/ -_) '_| | | || / _' |`, "#0ea5e9"},
		{`   \_/\_/\__,_|\__\___|_|  _/ |\_,_\__, |`, "#0284c7"},
		{`                          |__/     |___/ `, "#0369a1"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  %s\n\n", termenv.String("v"+version).Faint())
}
