package schedule

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/javiermolinar/horario/internal/clock"
)

// DefaultColor is the initial color of new activities.
const DefaultColor = "#4233DC"

// Activity is a transient paint request. Only its effect on the grid is kept.
type Activity struct {
	Name  string
	Days  []Day
	Start *clock.Time // nil when the field has no valid value
	End   *clock.Time
	Color string
}

// Validate checks the activity. The first failure wins:
// missing field, then range, then color, then day values.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" || len(a.Days) == 0 || a.Start == nil || a.End == nil {
		return ErrMissingField
	}
	if *a.End <= *a.Start {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRange, *a.Start, *a.End)
	}
	if !IsHexColor(a.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, a.Color)
	}
	for _, d := range a.Days {
		if !d.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownDay, int(d))
		}
	}
	return nil
}

// IndexRange returns the first and last block index touched by the
// half-open interval [Start, End) at the given step. Call after Validate.
func (a Activity) IndexRange(step int) (first, last int) {
	return a.Start.Minutes() / step, (a.End.Minutes() - 1) / step
}

// Paint writes the activity into every covered block for each of its days.
// Later paints replace earlier content in the same cells. Nothing is written
// when validation fails.
func Paint(g *Grid, a Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}

	first, last := a.IndexRange(g.step)
	indices := make([]int, 0, last-first+1)
	for idx := first; idx <= last; idx++ {
		if g.HasIndex(idx) {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return fmt.Errorf("%w: %s-%s", ErrOutsideGrid, *a.Start, *a.End)
	}

	name := strings.TrimSpace(a.Name)
	for _, idx := range indices {
		for _, d := range a.Days {
			if err := g.SetCell(idx, d, name, a.Color); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsHexColor reports whether s is "#RRGGBB".
func IsHexColor(s string) bool {
	if len(s) != 7 {
		return false
	}
	c, err := colorful.Hex(s)
	return err == nil && strings.EqualFold(c.Hex(), s)
}
