// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is used when no theme or an unknown theme is requested.
const DefaultName = "mocha"

// Theme holds the chrome colors of the TUI. Activity cells carry their own colors.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Time column, form panel
	BgSelection string `toml:"bg_selection"` // Cursor on empty cells
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Footer, hints
	Accent      string `toml:"accent"`       // Borders, focused field
	Warning     string `toml:"warning"`      // Stale grid marker
	Error       string `toml:"error"`        // Error notifications
	Success     string `toml:"success"`      // Success notifications
}

// Load loads a theme by name from embedded files.
// Falls back to the default theme if the name is unknown.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.BgHighlight = coalesce(t.BgHighlight, t.Bg)
	t.BgSelection = coalesce(t.BgSelection, t.BgHighlight)
	t.FgMuted = coalesce(t.FgMuted, t.Fg)
	t.Warning = coalesce(t.Warning, t.Accent)
	t.Error = coalesce(t.Error, t.Warning)
	t.Success = coalesce(t.Success, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
