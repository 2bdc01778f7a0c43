package clock

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Time
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "half past nine", input: "09:30", want: 570},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "no zero pad", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "twenty four", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:60", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "dot separator", input: "09.30", wantErr: true},
		{name: "seconds", input: "09:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input Time
		want  string
	}{
		{input: 0, want: "00:00"},
		{input: 570, want: "09:30"},
		{input: 1439, want: "23:59"},
		{input: EndOfDay, want: "24:00"},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("Time(%d).String() = %q, want %q", int(tt.input), got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	got, err := New(9, 45)
	if err != nil {
		t.Fatalf("New(9, 45) unexpected error: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 45 {
		t.Fatalf("New(9, 45) = %s", got)
	}

	if _, err := New(24, 0); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("New(24, 0) error = %v, want ErrInvalidFormat", err)
	}
	if _, err := New(10, -1); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("New(10, -1) error = %v, want ErrInvalidFormat", err)
	}
}

func TestAddWrapsAroundMidnight(t *testing.T) {
	if got := MustNew(23, 50).Add(15); got != MustNew(0, 5) {
		t.Errorf("23:50 + 15 = %s, want 00:05", got)
	}
	if got := MustNew(0, 5).Add(-10); got != MustNew(23, 55) {
		t.Errorf("00:05 - 10 = %s, want 23:55", got)
	}
}
