package schedule

import (
	"fmt"
	"strings"
)

// Day is a day of the week, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of grid columns.
const DaysPerWeek = 7

var dayCodes = [DaysPerWeek]string{"L", "K", "M", "J", "V", "S", "D"}

var dayNames = [DaysPerWeek]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var englishNames = [DaysPerWeek]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// AllDays returns Monday through Sunday.
func AllDays() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Code returns the single-letter code (L, K, M, J, V, S, D).
func (d Day) Code() string {
	if !d.Valid() {
		return "?"
	}
	return dayCodes[d]
}

// Name returns the display name.
func (d Day) Name() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

func (d Day) String() string {
	return d.Name()
}

// ParseDay accepts a day code, a display name or an English weekday name
// ("monday" or "mon"). Matching is case-insensitive.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for i := range DaysPerWeek {
		switch {
		case strings.EqualFold(s, dayCodes[i]),
			strings.EqualFold(s, dayNames[i]),
			strings.EqualFold(s, englishNames[i]),
			len(s) == 3 && strings.EqualFold(s, englishNames[i][:3]):
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// ParseDays parses a comma separated list of days, dropping duplicates and
// keeping the order of first appearance.
func ParseDays(s string) ([]Day, error) {
	var days []Day
	seen := make(map[Day]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := ParseDay(part)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days, nil
}
