package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the piratemap title to w using profile p.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []struct {
		text, hex string
	}{
		{"  ___ _          _                        ", "#818cf8"},
		{" | _ (_)_ _ __ _| |_ ___ _ __  __ _ _ __  ", "#a78bfa"},
		{" |  _/ | '_/ _` |  _/ -_) '  \\/ _` | '_ \\ ", "#c084fc"},
		{" |_| |_|_| \\__,_|\\__\\___|_|_|_\\__,_| .__/ ", "#e879f9"},
		{"                                   |_|    ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.hex)))
	}
	fmt.Fprintln(w)
}
