package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

// Palette colours used by the preview, one per marker.
var palette = map[rune]string{
	'.': "#94a3b8",
	'1': "#818cf8",
	'2': "#f472b6",
	'3': "#c084fc",
	'x': "#facc15",
}

// Colorize paints the markers of a rendered chart for the given profile.
// termenv.Ascii leaves the text unchanged.
func Colorize(rendered string, p termenv.Profile) string {
	if p == termenv.Ascii {
		return rendered
	}

	var sb strings.Builder
	for _, r := range rendered {
		hex, ok := palette[r]
		if !ok {
			sb.WriteRune(r)
			continue
		}
		s := termenv.String(string(r)).Foreground(p.Color(hex))
		if r == 'x' {
			s = s.Bold()
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}
