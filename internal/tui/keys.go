package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/horario/internal/schedule"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key",
		zap.String("key", msg.String()),
		zap.Stringer("mode", m.mode),
		zap.Int("day", m.cursor.Day),
		zap.Int("row", m.cursor.Row),
	)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeClear:
		return m.handleClearKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) setMode(mode Mode) {
	if m.mode != mode {
		m.logger.Debug("mode", zap.Stringer("from", m.mode), zap.Stringer("to", mode))
	}
	m.mode = mode
}

// handleNormalKeys handles keys while browsing the grid.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.cursor.Day--
	case "l", "right":
		m.cursor.Day++
	case "k", "up":
		m.cursor.Row--
	case "j", "down":
		m.cursor.Row++
	case "pgup":
		m.cursor.Row -= max(1, m.visibleRows())
	case "pgdown":
		m.cursor.Row += max(1, m.visibleRows())
	case "g", "home":
		m.cursor.Row = 0
	case "G", "end":
		m.cursor.Row = m.rowCount() - 1

	// Activity form
	case "a", "enter":
		m.form.days = [schedule.DaysPerWeek]bool{}
		m.form.days[m.cursor.Day] = true
		m.form.dayCursor = m.cursor.Day
		m.form.setFocus(fieldName)
		m.setMode(ModeForm)
		return m, nil

	// Clearing
	case "x", "delete", "backspace":
		label := m.currentRowLabel()
		return m, m.clearCell(schedule.Day(m.cursor.Day).Code(), label)
	case "c":
		m.clear = newClearForm(schedule.Day(m.cursor.Day).Code(), m.currentRowLabel())
		m.setMode(ModeClear)
		return m, nil

	// Grid controls
	case "+", "=":
		return m, m.changeStep(1)
	case "-":
		return m, m.changeStep(-1)
	case ">":
		return m, m.changeStep(5)
	case "<":
		return m, m.changeStep(-5)
	case "[":
		return m, m.changeHours(-1, 0)
	case "]":
		return m, m.changeHours(1, 0)
	case "{":
		return m, m.changeHours(0, -1)
	case "}":
		return m, m.changeHours(0, 1)
	case "r":
		if err := m.session.Reset(); err != nil {
			return m, m.setStatus(schedule.Message(err), true)
		}
		m.clampCursor()
		return m, m.setStatus("Tabla reiniciada.", false)

	case "y":
		return m, m.copySnapshot()
	}

	m.clampCursor()
	return m, nil
}

// changeStep moves the pending step control by delta minutes.
func (m *Model) changeStep(delta int) tea.Cmd {
	step := min(max(m.session.Step()+delta, schedule.MinStep), schedule.MaxStep)
	if step == m.session.Step() {
		return nil
	}
	if err := m.session.SetStep(step); err != nil {
		return m.setStatus(schedule.Message(err), true)
	}
	m.form.start.reset(step)
	m.form.end.reset(step)
	return m.pendingStatus()
}

// changeHours moves the pending hour range controls.
func (m *Model) changeHours(dMin, dMax int) tea.Cmd {
	hourMin, hourMax := m.session.HourRange()
	if err := m.session.SetHourRange(hourMin+dMin, hourMax+dMax); err != nil {
		return m.setStatus(schedule.Message(err), true)
	}
	return m.pendingStatus()
}

func (m *Model) pendingStatus() tea.Cmd {
	if !m.session.Stale() {
		return m.setStatus("Configuración sin cambios.", false)
	}
	return m.setStatus("Pulse r para aplicar la nueva configuración.", false)
}

// clearCell clears one cell and reports the outcome.
func (m *Model) clearCell(dayCode, rowLabel string) tea.Cmd {
	if err := m.session.ClearCell(dayCode, rowLabel); err != nil {
		return m.setStatus(schedule.Message(err), true)
	}
	return m.setStatus(fmt.Sprintf("Celda %s · %s limpiada.", strings.ToUpper(strings.TrimSpace(dayCode)), strings.TrimSpace(rowLabel)), false)
}

// copySnapshot copies the grid as tab-separated text.
func (m *Model) copySnapshot() tea.Cmd {
	snap, err := m.session.Snapshot()
	if err != nil {
		return m.setStatus(schedule.Message(err), true)
	}
	if err := m.copyFn(snap.Text()); err != nil {
		return m.setStatus("No se pudo copiar: "+err.Error(), true)
	}
	return m.setStatus("Tabla copiada al portapapeles.", false)
}

// handleFormKeys handles keys in the activity form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setMode(ModeNormal)
		return m, nil
	case "tab":
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case "shift+tab":
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldName:
		m.form.name, cmd = m.form.name.Update(msg)
	case fieldColor:
		m.form.color, cmd = m.form.color.Update(msg)
	case fieldDays:
		m.handleDayKeys(msg)
	case fieldStart:
		cmd = handleTimeKeys(&m.form.start, msg)
	case fieldEnd:
		cmd = handleTimeKeys(&m.form.end, msg)
	}
	return m, cmd
}

func (m *Model) handleDayKeys(msg tea.KeyMsg) {
	// Letters are day codes, so only the arrows move.
	switch key := msg.String(); key {
	case "left":
		m.form.dayCursor = (m.form.dayCursor + schedule.DaysPerWeek - 1) % schedule.DaysPerWeek
	case "right":
		m.form.dayCursor = (m.form.dayCursor + 1) % schedule.DaysPerWeek
	case " ":
		m.form.days[m.form.dayCursor] = !m.form.days[m.form.dayCursor]
	case "*":
		all := len(m.form.selectedDays()) < schedule.DaysPerWeek
		for i := range m.form.days {
			m.form.days[i] = all
		}
	default:
		if d, err := schedule.ParseDay(key); err == nil {
			m.form.days[d] = !m.form.days[d]
			m.form.dayCursor = int(d)
		}
	}
}

func handleTimeKeys(ti *timeInput, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "ctrl+p":
		ti.step(false)
		return nil
	case "down", "ctrl+n":
		ti.step(true)
		return nil
	}
	return ti.update(msg)
}

// submitForm paints the activity described by the form.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	a, warnings := m.form.activity()
	if err := m.session.AddActivity(a); err != nil {
		messages := append(warnings, schedule.Message(err))
		return m, m.setStatus(strings.Join(messages, " "), true)
	}
	m.logger.Info("activity_added", zap.String("name", a.Name))
	m.form.name.SetValue("")
	m.setMode(ModeNormal)
	return m, m.setStatus("Actividad agregada.", false)
}

// handleClearKeys handles keys in the clear-cell form.
func (m Model) handleClearKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setMode(ModeNormal)
		return m, nil
	case "tab", "shift+tab":
		m.clear.setFocus(m.clear.focus + 1)
		return m, nil
	case "up", "down":
		m.cycleClearField(msg.String() == "down")
		return m, nil
	case "enter":
		cmd := m.clearCell(m.clear.day.Value(), m.clear.row.Value())
		if !m.statusErr {
			m.setMode(ModeNormal)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	if m.clear.focus == 0 {
		m.clear.day, cmd = m.clear.day.Update(msg)
	} else {
		m.clear.row, cmd = m.clear.row.Update(msg)
	}
	return m, cmd
}

// cycleClearField steps the focused clear-form field through the valid values.
func (m *Model) cycleClearField(forward bool) {
	var values []string
	input := &m.clear.day
	if m.clear.focus == 0 {
		for _, d := range schedule.AllDays() {
			values = append(values, d.Code())
		}
	} else {
		labels, err := m.session.RowLabels()
		if err != nil {
			return
		}
		values = labels
		input = &m.clear.row
	}
	if len(values) == 0 {
		return
	}

	current := strings.TrimSpace(input.Value())
	next := 0
	for i, v := range values {
		if strings.EqualFold(v, current) {
			if forward {
				next = (i + 1) % len(values)
			} else {
				next = (i - 1 + len(values)) % len(values)
			}
			break
		}
	}
	input.SetValue(values[next])
	input.CursorEnd()
}
