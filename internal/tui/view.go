package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/horario/internal/picker"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/view"
)

// Layout heights outside the grid rows.
const (
	titleHeight  = 1
	tableChrome  = 4 // top border, header, header border, bottom border
	footerHeight = 2
)

// View renders the TUI.
func (m Model) View() string {
	g, err := m.session.Grid()
	if err != nil {
		return m.styles.StatusErrorStyle.Render(schedule.Message(err))
	}

	sections := []string{
		m.renderTitle(),
		view.RenderTable(m.tableViewState(g)),
	}
	if panel := m.renderPanel(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, view.RenderFooter(m.footerViewState()))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.colorBg)
}

// colWidth returns the width of a day column for the terminal width.
func (m Model) colWidth() int {
	if m.width <= 0 {
		return maxDayColWidth
	}
	// One border per column plus the outer border.
	avail := m.width - timeColWidth - (schedule.DaysPerWeek + 2)
	return min(max(avail/schedule.DaysPerWeek, minDayColWidth), maxDayColWidth)
}

// visibleRows returns how many grid rows fit on screen.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return max(1, m.rowCount())
	}
	avail := m.height - titleHeight - tableChrome - footerHeight
	if panel := m.renderPanel(); panel != "" {
		avail -= lipgloss.Height(panel)
	}
	return max(1, avail)
}

func (m Model) renderTitle() string {
	hourMin, hourMax := m.session.HourRange()
	title := m.styles.TitleStyle.Render("Horario semanal")
	controls := m.styles.ControlStyle.Render(fmt.Sprintf(
		"  intervalo %d min · horas %02d–%02d", m.session.Step(), hourMin, hourMax))
	line := title + controls
	if m.session.Stale() {
		line += m.styles.StaleStyle.Render("  ● pendiente (r)")
	}
	if m.width > 0 {
		line = view.Fit(line, m.width)
	}
	return line
}

func (m Model) tableViewState(g *schedule.Grid) view.TableViewState {
	snap := g.Snapshot()
	width := m.colWidth()

	headers := make([]string, len(snap.Columns))
	headerStyles := make([]lipgloss.Style, len(snap.Columns))
	for i, col := range snap.Columns {
		w := width
		if i == 0 {
			w = timeColWidth
		}
		headers[i] = view.Fit(col, w)
		headerStyles[i] = headerStyle(snap.Header).Width(w)
	}

	visible := m.visibleRows()
	from := min(m.scrollOffset, len(snap.Rows))
	to := min(from+visible, len(snap.Rows))

	content := view.TableContent{}
	for row := from; row < to; row++ {
		r := snap.Rows[row]
		cells := make([]string, 0, len(r.Cells)+1)
		styles := make([]lipgloss.Style, 0, len(r.Cells)+1)
		cells = append(cells, r.Label)
		styles = append(styles, m.styles.TimeColumnStyle)
		for day, c := range r.Cells {
			selected := row == m.cursor.Row && day == m.cursor.Day
			cells = append(cells, view.Fit(c.Label, width))
			styles = append(styles, m.styles.cellStyle(c, width, selected))
		}
		content.Rows = append(content.Rows, cells)
		content.CellStyles = append(content.CellStyles, styles)
	}

	return view.TableViewState{
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      content,
		BorderStyle:  m.styles.BorderStyle,
	}
}

// renderPanel renders the open form, if any.
func (m Model) renderPanel() string {
	switch m.mode {
	case ModeForm:
		return view.RenderForm(m.activityFormViewState())
	case ModeClear:
		return view.RenderForm(m.clearFormViewState())
	default:
		return ""
	}
}

func (m Model) formViewState(title string, lines []view.FormLine, hint string) view.FormViewState {
	return view.FormViewState{
		Title:       title,
		Lines:       lines,
		Hint:        hint,
		LabelWidth:  8,
		TitleStyle:  m.styles.FormTitleStyle,
		LabelStyle:  m.styles.FormLabelStyle,
		FocusStyle:  m.styles.FormFocusStyle,
		HintStyle:   m.styles.FormHintStyle,
		BorderStyle: m.styles.FormBorderStyle,
	}
}

func (m Model) activityFormViewState() view.FormViewState {
	f := m.form
	lines := []view.FormLine{
		{Label: "Nombre", Value: f.name.View(), Focused: f.focus == fieldName},
		{Label: "Días", Value: m.renderDays(), Focused: f.focus == fieldDays},
		{Label: "Inicio", Value: m.renderTime(f.start), Focused: f.focus == fieldStart},
		{Label: "Fin", Value: m.renderTime(f.end), Focused: f.focus == fieldEnd},
		{Label: "Color", Value: m.renderColor(), Focused: f.focus == fieldColor},
	}
	return m.formViewState("Agregar actividad", lines,
		"tab campo · ↑/↓ hora · espacio/letra día · enter agregar · esc cancelar")
}

func (m Model) clearFormViewState() view.FormViewState {
	lines := []view.FormLine{
		{Label: "Día", Value: m.clear.day.View(), Focused: m.clear.focus == 0},
		{Label: "Bloque", Value: m.clear.row.View(), Focused: m.clear.focus == 1},
	}
	return m.formViewState("Limpiar celda", lines, "↑/↓ recorrer valores · enter limpiar · esc cancelar")
}

func (m Model) renderDays() string {
	parts := make([]string, 0, schedule.DaysPerWeek)
	for _, d := range schedule.AllDays() {
		code := " " + d.Code() + " "
		if m.form.focus == fieldDays && int(d) == m.form.dayCursor {
			code = "[" + d.Code() + "]"
		}
		if m.form.days[d] {
			parts = append(parts, m.styles.DayOnStyle.Render(code))
		} else {
			parts = append(parts, m.styles.DayOffStyle.Render(code))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTime(ti timeInput) string {
	s := ti.input.View()
	_, err := ti.field.Value()
	if errors.Is(err, picker.ErrNoValue) {
		return s + " " + m.styles.FormHintStyle.Render("sin hora")
	}
	if err != nil {
		return s + " " + m.styles.StatusErrorStyle.Render(schedule.Message(err))
	}
	return s + " " + m.styles.FormHintStyle.Render(fmt.Sprintf("%d/%d", ti.field.Index()+1, len(ti.field.Options())))
}

func (m Model) renderColor() string {
	s := m.form.color.View()
	value := strings.TrimSpace(m.form.color.Value())
	if schedule.IsHexColor(value) {
		s += " " + lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("    ")
	}
	return s
}

func (m Model) footerViewState() view.FooterViewState {
	status := ""
	if m.statusMsg != "" {
		if m.statusErr {
			status = m.styles.StatusErrorStyle.Render(m.statusMsg)
		} else {
			status = m.styles.StatusStyle.Render(m.statusMsg)
		}
	} else if label := m.currentRowLabel(); label != "" {
		day := schedule.Day(m.cursor.Day)
		status = m.styles.ControlStyle.Render(day.Name() + " · " + label)
	}

	var help string
	switch m.mode {
	case ModeForm, ModeClear:
		help = "esc cancelar · enter confirmar"
	default:
		help = "a agregar · x limpiar · c limpiar… · +/- intervalo · [ ] { } horas · r reiniciar · y copiar · q salir"
	}

	width := m.width
	if width <= 0 {
		width = max(lipgloss.Width(status), lipgloss.Width(help))
	}
	return view.FooterViewState{
		InnerW:     width,
		StatusLine: view.Fit(status, width),
		HelpLine:   m.styles.HelpStyle.Render(view.Fit(help, width)),
		Bg:         m.styles.colorBg,
	}
}
