package picker

import (
	"errors"
	"strings"

	"github.com/javiermolinar/horario/internal/clock"
)

// ErrNoValue is returned by Field.Value when the field holds no time.
var ErrNoValue = errors.New("no time selected")

// Default range and step of a field.
const (
	DefaultStep = 15
)

var (
	DefaultStart = clock.MustNew(0, 0)
	DefaultEnd   = clock.MustNew(23, 59)
)

// Field is the stateful half of the picker: a cursor over the generated
// options plus an optional typed override.
type Field struct {
	Label string

	options    []string
	index      int
	typed      bool   // text overrides the selected option, even when empty
	text       string // typed value
	includeEnd bool
}

// FieldOptions configures NewField. Zero values fall back to the defaults.
type FieldOptions struct {
	Start   clock.Time
	End     clock.Time
	Step    int
	Default *clock.Time

	// IncludeEnd appends End itself as the last option, so an end field can
	// reach the last block of the day.
	IncludeEnd bool
}

// NewField builds a field whose initial selection is opts.Default, or the
// start of the range when no default is given.
func NewField(label string, opts FieldOptions) (*Field, error) {
	end := opts.End
	if end == 0 {
		end = DefaultEnd
	}
	step := opts.Step
	if step == 0 {
		step = DefaultStep
	}
	options, err := fieldOptions(opts.Start, end, step, opts.IncludeEnd)
	if err != nil {
		return nil, err
	}
	def := opts.Start
	if opts.Default != nil {
		def = *opts.Default
	}
	return &Field{
		Label:      label,
		options:    options,
		index:      DefaultIndex(options, def),
		includeEnd: opts.IncludeEnd,
	}, nil
}

func fieldOptions(start, end clock.Time, step int, includeEnd bool) ([]string, error) {
	options, err := GenerateOptions(start, end, step)
	if err != nil {
		return nil, err
	}
	if includeEnd && end > start && end < clock.EndOfDay {
		options = append(options, end.String())
	}
	return options, nil
}

// Options returns a copy of the option labels.
func (f *Field) Options() []string {
	out := make([]string, len(f.options))
	copy(out, f.options)
	return out
}

// Index returns the selected option position.
func (f *Field) Index() int {
	return f.index
}

// Next selects the following option, wrapping to the first.
func (f *Field) Next() {
	if len(f.options) == 0 {
		return
	}
	f.typed, f.text = false, ""
	f.index = (f.index + 1) % len(f.options)
}

// Prev selects the previous option, wrapping to the last.
func (f *Field) Prev() {
	if len(f.options) == 0 {
		return
	}
	f.typed, f.text = false, ""
	f.index = (f.index - 1 + len(f.options)) % len(f.options)
}

// SetText stores a typed value. If it matches an option the cursor follows it.
// An empty text leaves the field without a value.
func (f *Field) SetText(text string) {
	if t, err := ResolveSelection(text); err == nil {
		for i, o := range f.options {
			if o == t.String() {
				f.index = i
				f.typed, f.text = false, ""
				return
			}
		}
	}
	f.typed, f.text = true, text
}

// Display returns what the field currently shows.
func (f *Field) Display() string {
	if f.typed {
		return f.text
	}
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.index]
}

// Value resolves the current selection. A field emptied by typing yields
// ErrNoValue; an invalid typed value yields a *FormatError. In both cases the
// caller should treat the field as empty.
func (f *Field) Value() (clock.Time, error) {
	if f.typed && strings.TrimSpace(f.text) == "" {
		return 0, ErrNoValue
	}
	if !f.typed && len(f.options) == 0 {
		return 0, ErrNoValue
	}
	return ResolveSelection(f.Display())
}

// Reset regenerates the options for a new step. A selection that is still an
// option stays selected; any other value is kept as typed text.
func (f *Field) Reset(start, end clock.Time, step int) error {
	current, valueErr := f.Value()
	options, err := fieldOptions(start, end, step, f.includeEnd)
	if err != nil {
		return err
	}
	f.options = options
	f.index = 0
	if valueErr != nil {
		return nil
	}
	f.typed, f.text = false, ""
	f.SetText(current.String())
	return nil
}
