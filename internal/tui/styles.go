package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

// Column widths.
const (
	timeColWidth   = 11 // "HH:MM-HH:MM"
	minDayColWidth = 6
	maxDayColWidth = 16
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color

	TitleStyle   lipgloss.Style
	ControlStyle lipgloss.Style
	StaleStyle   lipgloss.Style

	HeaderStyle     lipgloss.Style
	TimeColumnStyle lipgloss.Style
	EmptyCellStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
	BorderStyle     lipgloss.Style

	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	FormBorderStyle lipgloss.Style
	FormTitleStyle  lipgloss.Style
	FormLabelStyle  lipgloss.Style
	FormFocusStyle  lipgloss.Style
	FormHintStyle   lipgloss.Style
	DayOnStyle      lipgloss.Style
	DayOffStyle     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          lipgloss.Color(t.Bg),
		colorBgHighlight: lipgloss.Color(t.BgHighlight),
		colorBgSelection: lipgloss.Color(t.BgSelection),
		colorFg:          lipgloss.Color(t.Fg),
		colorFgMuted:     lipgloss.Color(t.FgMuted),
		colorAccent:      lipgloss.Color(t.Accent),
	}

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.ControlStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.StaleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Warning))

	s.HeaderStyle = headerStyle(schedule.DefaultHeaderStyle)
	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight).
		Width(timeColWidth)
	s.EmptyCellStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.CursorStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)
	s.BorderStyle = lipgloss.NewStyle().Foreground(s.colorAccent)

	s.StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	s.StatusErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Error))
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.FormBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)
	s.FormTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.FormLabelStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.FormFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.FormHintStyle = lipgloss.NewStyle().Italic(true).Foreground(s.colorFgMuted)
	s.DayOnStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorBg).Background(s.colorAccent)
	s.DayOffStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	return s
}

// headerStyle translates the fixed header directive into a lipgloss style.
func headerStyle(h schedule.HeaderStyle) lipgloss.Style {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(h.Background)).
		Foreground(lipgloss.Color(h.Foreground)).
		Bold(h.Bold)
	if h.Align == "center" {
		style = style.Align(lipgloss.Center)
	}
	return style
}

// cellStyle returns the style of a grid cell, with the cursor applied.
func (s *Styles) cellStyle(c schedule.Cell, width int, selected bool) lipgloss.Style {
	cs, painted := schedule.StyleFor(c)
	var style lipgloss.Style
	switch {
	case painted && selected:
		bg := theme.Lighten(cs.Background, 0.30)
		style = lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(theme.TextOn(bg, cs.Foreground, "#000000"))).
			Bold(cs.Bold).
			Underline(true)
	case painted:
		style = lipgloss.NewStyle().
			Background(lipgloss.Color(cs.Background)).
			Foreground(lipgloss.Color(cs.Foreground)).
			Bold(cs.Bold)
	case selected:
		style = s.CursorStyle
	default:
		style = s.EmptyCellStyle
	}
	return style.Width(width).MaxWidth(width)
}
