package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "case insensitive", themeName: "LATTE", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "unknown falls back to mocha", themeName: "solarized", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, got.Name, tt.wantName)
			}
			if got.Bg == "" || got.Fg == "" || got.Accent == "" || got.Success == "" {
				t.Errorf("Load(%q) has empty colors: %+v", tt.themeName, got)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("mocha should be available")
	}
	if IsAvailable("frappe") {
		t.Error("frappe should not be available")
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		input string
		ratio float64
		want  string
	}{
		{input: "#000000", ratio: 0.5, want: "#808080"},
		{input: "#4233DC", ratio: 0, want: "#4233dc"},
		{input: "#123456", ratio: 1, want: "#ffffff"},
		{input: "blue", ratio: 0.5, want: "blue"},
	}
	for _, tt := range tests {
		if got := Lighten(tt.input, tt.ratio); got != tt.want {
			t.Errorf("Lighten(%q, %v) = %q, want %q", tt.input, tt.ratio, got, tt.want)
		}
	}
}

func TestTextOn(t *testing.T) {
	if got := TextOn("#ffffff", "#ffffff", "#000000"); got != "#000000" {
		t.Errorf("TextOn(white) = %q, want dark", got)
	}
	if got := TextOn("#1e1e2e", "#ffffff", "#000000"); got != "#ffffff" {
		t.Errorf("TextOn(dark) = %q, want light", got)
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b int
		ok      bool
	}{
		{input: "#4233DC", r: 0x42, g: 0x33, b: 0xdc, ok: true},
		{input: "#ffffff", r: 255, g: 255, b: 255, ok: true},
		{input: "#fff", ok: false},
		{input: "#12345G", ok: false},
		{input: "blue", ok: false},
	}
	for _, tt := range tests {
		r, g, b, ok := RGB(tt.input)
		if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("RGB(%q) = %d,%d,%d,%v, want %d,%d,%d,%v", tt.input, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
		}
	}
}
