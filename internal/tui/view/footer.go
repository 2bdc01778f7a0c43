package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW     int
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// RenderFooter renders the status and help lines.
func RenderFooter(state FooterViewState) string {
	s := state.StatusLine + "\n" + state.HelpLine
	return PlaceBox(state.InnerW, 2, lipgloss.Top, s, state.Bg)
}

// FormLine is one labelled row of a form panel.
type FormLine struct {
	Label   string
	Value   string
	Focused bool
}

// FormViewState holds the content of a form panel.
type FormViewState struct {
	Title       string
	Lines       []FormLine
	Hint        string
	LabelWidth  int
	TitleStyle  lipgloss.Style
	LabelStyle  lipgloss.Style
	FocusStyle  lipgloss.Style
	HintStyle   lipgloss.Style
	BorderStyle lipgloss.Style
}

// RenderForm renders a bordered form panel.
func RenderForm(state FormViewState) string {
	var b strings.Builder
	b.WriteString(state.TitleStyle.Render(state.Title))
	for _, line := range state.Lines {
		b.WriteByte('\n')
		label := line.Label + strings.Repeat(" ", max(0, state.LabelWidth-lipgloss.Width(line.Label)))
		if line.Focused {
			b.WriteString(state.FocusStyle.Render("› " + label))
		} else {
			b.WriteString(state.LabelStyle.Render("  " + label))
		}
		b.WriteString(" ")
		b.WriteString(line.Value)
	}
	if state.Hint != "" {
		b.WriteByte('\n')
		b.WriteString(state.HintStyle.Render(state.Hint))
	}
	return state.BorderStyle.Render(b.String())
}
