package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// parse reads a "#RRGGBB" color. Shorthand and longer forms are rejected.
func parse(hex string) (colorful.Color, bool) {
	if len(hex) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil || !strings.EqualFold(c.Hex(), hex) {
		return colorful.Color{}, false
	}
	return c, true
}

// Lighten blends a hex color towards white. Non-hex input is returned unchanged.
func Lighten(hex string, ratio float64) string {
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	return c.BlendRgb(white, min(max(ratio, 0), 1)).Clamped().Hex()
}

// TextOn picks whichever of light or dark has the better contrast on bg.
func TextOn(bg, light, dark string) string {
	if contrastRatio(bg, light) >= contrastRatio(bg, dark) {
		return light
	}
	return dark
}

// RGB splits a "#RRGGBB" color into its components.
func RGB(hex string) (r, g, b int, ok bool) {
	c, ok := parse(hex)
	if !ok {
		return 0, 0, 0, false
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8), true
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance is the WCAG luminance of a hex color, 0 when invalid.
func relativeLuminance(hex string) float64 {
	c, ok := parse(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
