// Package session holds the per-user schedule state: the live grid and the
// controls that shape the next one.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/picker"
	"github.com/javiermolinar/horario/internal/schedule"
)

// ErrUnknownCell is returned when a clear request names a day or row that is
// not in the current grid.
var ErrUnknownCell = errors.New("unknown cell")

// Defaults for a new session.
const (
	DefaultStep    = 15
	DefaultHourMin = 0
	DefaultHourMax = 23
)

// State is the lifecycle state of a session.
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Session owns one grid and its configuration controls.
//
// Changing the step or hour range only updates the controls. The grid keeps
// its shape until Reset is called, so a session can be Stale.
// A Session is not safe for concurrent use; give each user their own.
type Session struct {
	logger *zap.Logger

	step    int
	hourMin int
	hourMax int

	grid *schedule.Grid
}

// Option configures a Session.
type Option func(*Session)

// WithStep sets the initial minutes per block.
func WithStep(step int) Option {
	return func(s *Session) {
		s.step = step
	}
}

// WithHourRange sets the initial visible hours.
func WithHourRange(hourMin, hourMax int) Option {
	return func(s *Session) {
		s.hourMin = hourMin
		s.hourMax = hourMax
	}
}

// WithLogger sets the logger. A no-op logger is used otherwise.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an uninitialized session. The grid is built on first use.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		logger:  zap.NewNop(),
		step:    DefaultStep,
		hourMin: DefaultHourMin,
		hourMax: DefaultHourMax,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := schedule.ValidateConfig(s.hourMin, s.hourMax, s.step); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns the lifecycle state.
func (s *Session) State() State {
	if s.grid == nil {
		return Uninitialized
	}
	return Ready
}

// Step returns the step control value.
func (s *Session) Step() int {
	return s.step
}

// HourRange returns the hour range control values.
func (s *Session) HourRange() (hourMin, hourMax int) {
	return s.hourMin, s.hourMax
}

// SetStep changes the step control. The grid is not rebuilt.
func (s *Session) SetStep(step int) error {
	if err := schedule.ValidateConfig(s.hourMin, s.hourMax, step); err != nil {
		return err
	}
	s.step = step
	s.logger.Debug("step_changed", zap.Int("step", step), zap.Bool("stale", s.Stale()))
	return nil
}

// SetHourRange changes the hour range control. The grid is not rebuilt.
func (s *Session) SetHourRange(hourMin, hourMax int) error {
	if err := schedule.ValidateConfig(hourMin, hourMax, s.step); err != nil {
		return err
	}
	s.hourMin, s.hourMax = hourMin, hourMax
	s.logger.Debug("hours_changed", zap.Int("hour_min", hourMin), zap.Int("hour_max", hourMax), zap.Bool("stale", s.Stale()))
	return nil
}

// Stale reports whether the controls differ from the shape of the live grid.
func (s *Session) Stale() bool {
	if s.grid == nil {
		return false
	}
	hourMin, hourMax := s.grid.HourRange()
	return s.grid.Step() != s.step || hourMin != s.hourMin || hourMax != s.hourMax
}

// Grid returns the live grid, building it on first access.
func (s *Session) Grid() (*schedule.Grid, error) {
	if s.grid == nil {
		if err := s.rebuild("init"); err != nil {
			return nil, err
		}
	}
	return s.grid, nil
}

// Reset replaces the grid with an empty one shaped by the current controls.
// Every painted cell is discarded.
func (s *Session) Reset() error {
	return s.rebuild("reset")
}

func (s *Session) rebuild(reason string) error {
	g, err := schedule.NewGrid(s.hourMin, s.hourMax, s.step)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}
	s.grid = g
	s.logger.Debug("grid_rebuilt",
		zap.String("reason", reason),
		zap.Int("step", s.step),
		zap.Int("hour_min", s.hourMin),
		zap.Int("hour_max", s.hourMax),
		zap.Int("rows", g.Len()),
	)
	return nil
}

// AddActivity paints an activity onto the live grid using the grid's own step.
func (s *Session) AddActivity(a schedule.Activity) error {
	g, err := s.Grid()
	if err != nil {
		return err
	}
	if err := schedule.Paint(g, a); err != nil {
		s.logger.Debug("activity_rejected", zap.String("name", a.Name), zap.Error(err))
		return err
	}
	s.logger.Debug("activity_painted",
		zap.String("name", a.Name),
		zap.Stringers("days", a.Days),
		zap.Stringer("start", a.Start),
		zap.Stringer("end", a.End),
		zap.String("color", a.Color),
	)
	return nil
}

// ClearCell empties the cell for a day (code or name) and a row label
// ("HH:MM-HH:MM") of the live grid.
func (s *Session) ClearCell(day, rowLabel string) error {
	g, err := s.Grid()
	if err != nil {
		return err
	}
	d, err := schedule.ParseDay(day)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownCell, err)
	}
	row, ok := g.RowByLabel(rowLabel)
	if !ok {
		return fmt.Errorf("%w: %w: no row %q", ErrUnknownCell, schedule.ErrOutOfRange, rowLabel)
	}
	if err := g.ClearRow(row, d); err != nil {
		return err
	}
	s.logger.Debug("cell_cleared", zap.String("day", d.Code()), zap.String("row", rowLabel))
	return nil
}

// Snapshot returns a read-only copy of the live grid.
func (s *Session) Snapshot() (schedule.Snapshot, error) {
	g, err := s.Grid()
	if err != nil {
		return schedule.Snapshot{}, err
	}
	return g.Snapshot(), nil
}

// RowLabels lists the labels of the live grid, for the clear-cell selector.
func (s *Session) RowLabels() ([]string, error) {
	g, err := s.Grid()
	if err != nil {
		return nil, err
	}
	blocks := g.Blocks()
	labels := make([]string, len(blocks))
	for i, b := range blocks {
		labels[i] = b.Label()
	}
	return labels, nil
}

// PickerOptions returns the start/end field options for the step control.
func (s *Session) PickerOptions() ([]string, error) {
	return picker.GenerateOptions(picker.DefaultStart, picker.DefaultEnd, s.step)
}

// NewTimeField builds a start field at the step control.
func (s *Session) NewTimeField(label string, def clock.Time) (*picker.Field, error) {
	return picker.NewField(label, picker.FieldOptions{
		Start:   picker.DefaultStart,
		End:     picker.DefaultEnd,
		Step:    s.step,
		Default: &def,
	})
}

// NewEndField builds an end field at the step control. Its last option is
// 23:59 so the last block of the day can be painted.
func (s *Session) NewEndField(label string, def clock.Time) (*picker.Field, error) {
	return picker.NewField(label, picker.FieldOptions{
		Start:      picker.DefaultStart,
		End:        picker.DefaultEnd,
		Step:       s.step,
		Default:    &def,
		IncludeEnd: true,
	})
}
