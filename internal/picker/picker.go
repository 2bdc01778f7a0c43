// Package picker implements a stepped time-of-day picker with free-text entry.
//
// Host toolkits usually offer time inputs with hour granularity only. The
// functions here produce the option list for an arbitrary step and validate
// typed values, independent of any particular widget.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/horario/internal/clock"
)

// ErrInvalidStep is returned when the step is not a positive number of minutes.
var ErrInvalidStep = errors.New("step must be a positive number of minutes")

// FormatError reports text that is not a valid "HH:MM" time.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %v", e.Input, clock.ErrInvalidFormat)
}

// Unwrap allows errors.Is(err, clock.ErrInvalidFormat).
func (e *FormatError) Unwrap() error {
	return clock.ErrInvalidFormat
}

// UserMessage returns the message shown next to the field.
func (e *FormatError) UserMessage() string {
	return fmt.Sprintf("Formato inválido: «%s». Debe ser HH:MM.", e.Input)
}

// GenerateOptions returns "HH:MM" labels at start, start+step, ... strictly
// below end. When step does not divide the range evenly the last label is the
// last one below end; no shorter trailing entry is added.
func GenerateOptions(start, end clock.Time, step int) ([]string, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	if end <= start {
		return []string{}, nil
	}
	options := make([]string, 0, (end.Minutes()-start.Minutes()+step-1)/step)
	for m := start.Minutes(); m < end.Minutes(); m += step {
		options = append(options, clock.Time(m).String())
	}
	return options, nil
}

// ResolveSelection converts a selected label or typed text into a time.
// Leading and trailing whitespace is ignored; everything else must be exact
// "HH:MM". Failures are *FormatError.
func ResolveSelection(text string) (clock.Time, error) {
	trimmed := strings.TrimSpace(text)
	t, err := clock.Parse(trimmed)
	if err != nil {
		return 0, &FormatError{Input: trimmed}
	}
	return t, nil
}

// DefaultIndex returns the position of def in options, or 0 if absent.
func DefaultIndex(options []string, def clock.Time) int {
	label := def.String()
	for i, o := range options {
		if o == label {
			return i
		}
	}
	return 0
}
