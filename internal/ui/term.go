package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Time column and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Success messages
	colorStats = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// disableColor disables all color output.
func disableColor() {
	color.NoColor = true
}

// rgbColor builds a color with the given hex background and foreground.
// Components that are not valid hex are left out.
func rgbColor(bg, fg string, bold bool) *color.Color {
	c := color.New()
	if r, g, b, ok := theme.RGB(bg); ok {
		c.AddBgRGB(r, g, b)
	}
	if r, g, b, ok := theme.RGB(fg); ok {
		c.AddRGB(r, g, b)
	}
	if bold {
		c.Add(color.Bold)
	}
	return c
}

// headerColor returns the fixed header directive as a terminal color.
func headerColor(h schedule.HeaderStyle) *color.Color {
	return rgbColor(h.Background, h.Foreground, h.Bold)
}

// cellColor returns the terminal color of a painted cell, or nil.
func cellColor(c schedule.Cell) *color.Color {
	style, ok := schedule.StyleFor(c)
	if !ok {
		return nil
	}
	return rgbColor(style.Background, style.Foreground, style.Bold)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatStats formats text for success output.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}
