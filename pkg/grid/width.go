package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WidthFunc measures the display width of a single line of text.
type WidthFunc func(line string) int

// DisplayWidth is the default width function: East Asian wide runes count 2,
// zero-width and control runes count 0, and ANSI escape sequences are
// ignored. It is the measure terminals actually use for cursor advancement.
func DisplayWidth(line string) int {
	if strings.ContainsRune(line, '\x1b') {
		line = stripANSI(line)
	}
	return runewidth.StringWidth(line)
}

// stripANSI removes CSI escape sequences from s.
func stripANSI(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// splitLines splits multi-line cell text. Empty text still occupies one line.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// textWidth returns the widest line of text under fn.
func textWidth(text string, fn WidthFunc) int {
	if !strings.Contains(text, "\n") {
		return fn(text)
	}
	w := 0
	for _, line := range splitLines(text) {
		w = max(w, fn(line))
	}
	return w
}

// textHeight returns the number of lines in text.
func textHeight(text string) int {
	return strings.Count(text, "\n") + 1
}
