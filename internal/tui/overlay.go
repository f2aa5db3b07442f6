package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws card centred over base. Columns of base outside the
// card stay visible. Without a known size the card is appended instead.
func overlayCenter(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base + "\n\n" + card
	}
	baseLines := canvasLines(base, width, height)
	placed := canvasLines(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)

	out := make([]string, height)
	for i := range out {
		start, end, ok := cardBounds(placed[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		segment := ansi.Truncate(dropColumns(placed[i], start), end-start, "")
		right := dropColumns(baseLines[i], end)
		out[i] = padRightANSI(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// cardBounds finds the non-blank column span of one overlay row.
func cardBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(trimmed) && trimmed[start] == ' ' {
		start++
	}
	return start, ansi.StringWidth(trimmed), true
}

func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
