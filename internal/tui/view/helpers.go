// Package view provides view composition helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines, "\n")
}

// Fit truncates s to width cells, marking the cut with an ellipsis.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ansi.Truncate(s, 1, "")
	}
	return ansi.Truncate(s, width, "…")
}
