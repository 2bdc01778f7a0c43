// Package clock provides minute-resolution time-of-day values.
package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when text is not a valid "HH:MM" time.
var ErrInvalidFormat = errors.New("time must be in HH:MM format")

// MinutesPerDay is the number of minutes in a day.
const MinutesPerDay = 24 * 60

// EndOfDay is the exclusive upper bound of a day ("24:00").
// It is only meaningful as the end of a range.
const EndOfDay Time = MinutesPerDay

// Time is a time of day expressed as minutes since midnight.
type Time int

// New returns the time for the given hour and minute.
func New(hour, minute int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidFormat, hour, minute)
	}
	return Time(hour*60 + minute), nil
}

// MustNew is like New but panics on invalid input. Intended for constants and tests.
func MustNew(hour, minute int) Time {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses exactly "HH:MM" (24-hour, zero padded).
// "9:30", "09:3", "24:00" and "09:60" are all rejected.
func Parse(s string) (Time, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if !isDigits(s[0:2]) || !isDigits(s[3:5]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return Time(hour*60 + minute), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Minutes returns the minutes since midnight.
func (t Time) Minutes() int {
	return int(t)
}

// Hour returns the hour component.
func (t Time) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t Time) Minute() int {
	return int(t) % 60
}

// Add returns t shifted by the given number of minutes, wrapping around midnight.
func (t Time) Add(minutes int) Time {
	m := (int(t) + minutes) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return Time(m)
}

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool {
	return t < u
}

// String formats the time as zero-padded "HH:MM".
// EndOfDay formats as "24:00".
func (t Time) String() string {
	m := int(t)
	if m < 0 {
		m = 0
	}
	if m > MinutesPerDay {
		m = MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
