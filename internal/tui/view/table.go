package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds data needed to render the schedule grid.
type TableViewState struct {
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	BorderStyle  lipgloss.Style
}

// RenderTable renders the visible grid rows using a lipgloss table.
func RenderTable(state TableViewState) string {
	if len(state.Headers) == 0 {
		return ""
	}

	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Content.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(state.HeaderStyles) {
					return state.HeaderStyles[col]
				}
				return lipgloss.NewStyle()
			}
			if row < 0 || row >= len(state.Content.CellStyles) || col < 0 || col >= len(state.Content.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.Content.CellStyles[row][col]
		})

	return t.Render()
}
