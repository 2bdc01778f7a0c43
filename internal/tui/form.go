package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/picker"
	"github.com/javiermolinar/horario/internal/schedule"
)

// formField identifies the focused field of the activity form.
type formField int

const (
	fieldName formField = iota
	fieldDays
	fieldStart
	fieldEnd
	fieldColor
	fieldCount
)

// timeInput pairs a picker field with the text box that shows it.
type timeInput struct {
	field *picker.Field
	input textinput.Model
}

func newTimeInput(f *picker.Field) timeInput {
	in := textinput.New()
	in.CharLimit = 5
	in.Width = 6
	in.SetValue(f.Display())
	return timeInput{field: f, input: in}
}

// step moves the selection by one option and shows it.
func (ti *timeInput) step(forward bool) {
	if forward {
		ti.field.Next()
	} else {
		ti.field.Prev()
	}
	ti.input.SetValue(ti.field.Display())
	ti.input.CursorEnd()
}

// update feeds a key to the text box and mirrors the typed text into the field.
func (ti *timeInput) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ti.input, cmd = ti.input.Update(msg)
	ti.field.SetText(ti.input.Value())
	return cmd
}

// reset regenerates the options for a new step.
func (ti *timeInput) reset(step int) {
	if err := ti.field.Reset(picker.DefaultStart, picker.DefaultEnd, step); err == nil {
		ti.input.SetValue(ti.field.Display())
	}
}

// activityForm holds the inputs of the "add activity" panel.
type activityForm struct {
	name      textinput.Model
	color     textinput.Model
	days      [schedule.DaysPerWeek]bool
	dayCursor int
	start     timeInput
	end       timeInput
	focus     formField
}

func newActivityForm(start, end *picker.Field, defaultColor string) activityForm {
	name := textinput.New()
	name.Placeholder = "Actividad"
	name.CharLimit = 64
	name.Width = 30

	color := textinput.New()
	color.CharLimit = 7
	color.Width = 8
	color.SetValue(defaultColor)

	f := activityForm{
		name:  name,
		color: color,
		start: newTimeInput(start),
		end:   newTimeInput(end),
	}
	f.setFocus(fieldName)
	return f
}

func (f *activityForm) setFocus(field formField) {
	f.focus = (field + fieldCount) % fieldCount
	f.name.Blur()
	f.color.Blur()
	f.start.input.Blur()
	f.end.input.Blur()
	switch f.focus {
	case fieldName:
		f.name.Focus()
	case fieldStart:
		f.start.input.Focus()
	case fieldEnd:
		f.end.input.Focus()
	case fieldColor:
		f.color.Focus()
	}
}

func (f *activityForm) selectedDays() []schedule.Day {
	var days []schedule.Day
	for i, on := range f.days {
		if on {
			days = append(days, schedule.Day(i))
		}
	}
	return days
}

// activity builds the paint request. Time fields that do not hold a valid
// value are left nil and their messages returned.
func (f *activityForm) activity() (schedule.Activity, []string) {
	var warnings []string
	resolve := func(ti timeInput) *clock.Time {
		t, err := ti.field.Value()
		if errors.Is(err, picker.ErrNoValue) {
			return nil
		}
		if err != nil {
			warnings = append(warnings, schedule.Message(err))
			return nil
		}
		return &t
	}

	a := schedule.Activity{
		Name:  f.name.Value(),
		Days:  f.selectedDays(),
		Start: resolve(f.start),
		End:   resolve(f.end),
		Color: strings.TrimSpace(f.color.Value()),
	}
	return a, warnings
}

// clearForm holds the inputs of the "clear cell" panel.
type clearForm struct {
	day   textinput.Model
	row   textinput.Model
	focus int // 0=day, 1=row
}

func newClearForm(dayCode, rowLabel string) clearForm {
	day := textinput.New()
	day.CharLimit = 10
	day.Width = 10
	day.SetValue(dayCode)

	row := textinput.New()
	row.CharLimit = 11
	row.Width = 12
	row.SetValue(rowLabel)

	f := clearForm{day: day, row: row}
	f.setFocus(0)
	return f
}

func (f *clearForm) setFocus(i int) {
	f.focus = (i + 2) % 2
	if f.focus == 0 {
		f.day.Focus()
		f.row.Blur()
	} else {
		f.row.Focus()
		f.day.Blur()
	}
}
