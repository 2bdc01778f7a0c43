package picker

import (
	"errors"
	"testing"

	"github.com/javiermolinar/horario/internal/clock"
)

func TestGenerateOptionsFullDay(t *testing.T) {
	options, err := GenerateOptions(clock.MustNew(0, 0), clock.EndOfDay, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 96 {
		t.Fatalf("len(options) = %d, want 96", len(options))
	}
	if options[0] != "00:00" || options[1] != "00:15" || options[95] != "23:45" {
		t.Fatalf("unexpected boundaries: %s %s %s", options[0], options[1], options[95])
	}
	seen := make(map[string]bool, len(options))
	for i, o := range options {
		if seen[o] {
			t.Fatalf("duplicate option %q", o)
		}
		seen[o] = true
		if i > 0 && options[i-1] >= o {
			t.Fatalf("options not strictly increasing at %d: %s >= %s", i, options[i-1], o)
		}
	}
}

func TestGenerateOptions(t *testing.T) {
	tests := []struct {
		name      string
		start     clock.Time
		end       clock.Time
		step      int
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{name: "default range", start: DefaultStart, end: DefaultEnd, step: 15, wantLen: 96, wantFirst: "00:00", wantLast: "23:45"},
		{name: "uneven step", start: clock.MustNew(9, 0), end: clock.MustNew(10, 0), step: 25, wantLen: 3, wantFirst: "09:00", wantLast: "09:50"},
		{name: "end excluded", start: clock.MustNew(9, 0), end: clock.MustNew(10, 0), step: 30, wantLen: 2, wantFirst: "09:00", wantLast: "09:30"},
		{name: "hourly", start: clock.MustNew(0, 0), end: clock.EndOfDay, step: 60, wantLen: 24, wantFirst: "00:00", wantLast: "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateOptions(tt.start, tt.end, tt.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d (%v)", len(got), tt.wantLen, got)
			}
			if got[0] != tt.wantFirst || got[len(got)-1] != tt.wantLast {
				t.Fatalf("range = %s..%s, want %s..%s", got[0], got[len(got)-1], tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestGenerateOptionsIsRestartable(t *testing.T) {
	a, _ := GenerateOptions(clock.MustNew(8, 0), clock.MustNew(12, 0), 20)
	b, _ := GenerateOptions(clock.MustNew(8, 0), clock.MustNew(12, 0), 20)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("option %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGenerateOptionsInvalidStep(t *testing.T) {
	for _, step := range []int{0, -15} {
		if _, err := GenerateOptions(0, clock.EndOfDay, step); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("step %d: error = %v, want ErrInvalidStep", step, err)
		}
	}
}

func TestGenerateOptionsEmptyRange(t *testing.T) {
	got, err := GenerateOptions(clock.MustNew(10, 0), clock.MustNew(10, 0), 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want no options", got)
	}
}

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    clock.Time
		wantErr bool
	}{
		{name: "option label", input: "09:30", want: clock.MustNew(9, 30)},
		{name: "surrounding spaces", input: " 18:05 ", want: clock.MustNew(18, 5)},
		{name: "no zero pad rejected", input: "9:30", wantErr: true},
		{name: "hour too large", input: "25:00", wantErr: true},
		{name: "garbage", input: "lunch", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSelection(tt.input)
			if tt.wantErr {
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("ResolveSelection(%q) error = %v, want *FormatError", tt.input, err)
				}
				if !errors.Is(err, clock.ErrInvalidFormat) {
					t.Fatalf("ResolveSelection(%q) error does not wrap ErrInvalidFormat", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveSelection(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ResolveSelection(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatErrorUserMessage(t *testing.T) {
	_, err := ResolveSelection("9:30")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	want := "Formato inválido: «9:30». Debe ser HH:MM."
	if got := fe.UserMessage(); got != want {
		t.Fatalf("UserMessage() = %q, want %q", got, want)
	}
}

func TestDefaultIndex(t *testing.T) {
	options, _ := GenerateOptions(0, clock.EndOfDay, 15)

	if got := DefaultIndex(options, clock.MustNew(23, 0)); got != 92 {
		t.Errorf("DefaultIndex(23:00) = %d, want 92", got)
	}
	if got := DefaultIndex(options, clock.MustNew(9, 7)); got != 0 {
		t.Errorf("DefaultIndex(09:07) = %d, want 0", got)
	}
	if got := DefaultIndex(nil, clock.MustNew(9, 0)); got != 0 {
		t.Errorf("DefaultIndex on empty options = %d, want 0", got)
	}
}
