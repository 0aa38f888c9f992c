package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateWidth clamps every line of text to the given display width,
// appending an ellipsis to clipped lines. Width is measured in terminal
// cells, so wide runes and styled text are handled correctly.
func TruncateWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width-1) + "…"
	}
	return strings.Join(lines, "\n")
}

// ClipLines keeps at most maxLines lines of text.
func ClipLines(text string, maxLines int) string {
	if maxLines < 1 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n")
}
