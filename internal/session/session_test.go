package session

import (
	"errors"
	"testing"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/schedule"
)

func at(hour, minute int) *clock.Time {
	t := clock.MustNew(hour, minute)
	return &t
}

func gym() schedule.Activity {
	return schedule.Activity{
		Name:  "Gym",
		Days:  []schedule.Day{schedule.Monday, schedule.Wednesday},
		Start: at(9, 0),
		End:   at(10, 0),
		Color: schedule.DefaultColor,
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != Uninitialized {
		t.Fatalf("State() = %v, want uninitialized", s.State())
	}
	if s.Step() != 15 {
		t.Fatalf("Step() = %d, want 15", s.Step())
	}
	if lo, hi := s.HourRange(); lo != 0 || hi != 23 {
		t.Fatalf("HourRange() = %d..%d, want 0..23", lo, hi)
	}

	g, err := s.Grid()
	if err != nil {
		t.Fatalf("Grid() unexpected error: %v", err)
	}
	if g.Len() != 96 {
		t.Fatalf("Len() = %d, want 96", g.Len())
	}
	if s.State() != Ready {
		t.Fatalf("State() = %v, want ready", s.State())
	}
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "zero step", opts: []Option{WithStep(0)}},
		{name: "inverted hours", opts: []Option{WithHourRange(18, 8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts...); !errors.Is(err, schedule.ErrInvalidConfiguration) {
				t.Fatalf("error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestAddActivityInitializesGrid(t *testing.T) {
	s, _ := New()
	if err := s.AddActivity(gym()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, _ := s.Snapshot()
	if snap.Painted() != 8 {
		t.Fatalf("Painted() = %d, want 8", snap.Painted())
	}
	if c := snap.Rows[36].Cells[schedule.Monday]; c.Label != "Gym" {
		t.Fatalf("row 36 Monday = %+v", c)
	}
	if c := snap.Rows[36].Cells[schedule.Tuesday]; !c.IsEmpty() {
		t.Fatalf("row 36 Tuesday = %+v, want empty", c)
	}
}

func TestAddActivityFailureLeavesStateUnchanged(t *testing.T) {
	s, _ := New()
	_ = s.AddActivity(gym())
	before, _ := s.Snapshot()

	bad := gym()
	bad.End = at(9, 0)
	if err := s.AddActivity(bad); !errors.Is(err, schedule.ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
	after, _ := s.Snapshot()
	if !before.Equal(after) {
		t.Fatal("failed activity changed the grid")
	}
}

func TestSetStepDoesNotRebuild(t *testing.T) {
	s, _ := New()
	_ = s.AddActivity(gym())

	if err := s.SetStep(30); err != nil {
		t.Fatalf("SetStep unexpected error: %v", err)
	}
	if !s.Stale() {
		t.Fatal("session should be stale after step change")
	}
	g, _ := s.Grid()
	if g.Step() != 15 || g.Len() != 96 {
		t.Fatalf("grid rebuilt early: step %d, rows %d", g.Step(), g.Len())
	}
	snap, _ := s.Snapshot()
	if snap.Painted() != 8 {
		t.Fatalf("painted cells lost before reset: %d", snap.Painted())
	}

	// Painting while stale uses the live grid's step.
	late := gym()
	late.Name = "Late"
	late.Days = []schedule.Day{schedule.Friday}
	late.Start, late.End = at(18, 0), at(18, 30)
	if err := s.AddActivity(late); err != nil {
		t.Fatalf("AddActivity while stale: %v", err)
	}
	snap, _ = s.Snapshot()
	if snap.Rows[72].Cells[schedule.Friday].Label != "Late" || snap.Rows[73].Cells[schedule.Friday].Label != "Late" {
		t.Fatal("stale paint should follow the live 15 minute grid")
	}
}

func TestResetAppliesControlsAndDiscardsCells(t *testing.T) {
	s, _ := New()
	_ = s.AddActivity(gym())
	_ = s.SetStep(60)
	_ = s.SetHourRange(8, 17)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset unexpected error: %v", err)
	}
	if s.Stale() {
		t.Fatal("session should not be stale after reset")
	}
	snap, _ := s.Snapshot()
	if len(snap.Rows) != 10 {
		t.Fatalf("rows = %d, want 10", len(snap.Rows))
	}
	if snap.Painted() != 0 {
		t.Fatalf("Painted() = %d, want 0 after reset", snap.Painted())
	}
}

func TestResetDiscardsCellsWithSameShape(t *testing.T) {
	s, _ := New()
	_ = s.AddActivity(gym())
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset unexpected error: %v", err)
	}
	snap, _ := s.Snapshot()
	if snap.Painted() != 0 {
		t.Fatalf("Painted() = %d, want 0", snap.Painted())
	}
}

func TestSetControlsValidate(t *testing.T) {
	s, _ := New()
	if err := s.SetStep(0); !errors.Is(err, schedule.ErrInvalidConfiguration) {
		t.Errorf("SetStep(0) error = %v", err)
	}
	if err := s.SetStep(61); !errors.Is(err, schedule.ErrInvalidConfiguration) {
		t.Errorf("SetStep(61) error = %v", err)
	}
	if err := s.SetHourRange(12, 11); !errors.Is(err, schedule.ErrInvalidConfiguration) {
		t.Errorf("SetHourRange(12, 11) error = %v", err)
	}
	if s.Step() != 15 {
		t.Fatalf("rejected step stored: %d", s.Step())
	}
	if lo, hi := s.HourRange(); lo != 0 || hi != 23 {
		t.Fatalf("rejected range stored: %d..%d", lo, hi)
	}
}

func TestClearCell(t *testing.T) {
	s, _ := New()
	_ = s.AddActivity(gym())

	if err := s.ClearCell("L", "09:00-09:14"); err != nil {
		t.Fatalf("ClearCell unexpected error: %v", err)
	}
	once, _ := s.Snapshot()
	if !once.Rows[36].Cells[schedule.Monday].IsEmpty() {
		t.Fatal("cell not cleared")
	}
	if once.Rows[36].Cells[schedule.Wednesday].Label != "Gym" {
		t.Fatal("other day affected")
	}

	if err := s.ClearCell("L", "09:00-09:14"); err != nil {
		t.Fatalf("second ClearCell unexpected error: %v", err)
	}
	twice, _ := s.Snapshot()
	if !once.Equal(twice) {
		t.Fatal("clear is not idempotent")
	}
}

func TestClearCellUnknown(t *testing.T) {
	s, _ := New()
	if err := s.ClearCell("X", "09:00-09:14"); !errors.Is(err, ErrUnknownCell) {
		t.Errorf("unknown day error = %v", err)
	}
	if err := s.ClearCell("L", "09:00-09:29"); !errors.Is(err, ErrUnknownCell) {
		t.Errorf("unknown row error = %v", err)
	}
}

func TestPickerOptionsFollowStepControl(t *testing.T) {
	s, _ := New()
	_, _ = s.Grid()
	_ = s.SetStep(30)

	options, err := s.PickerOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 48 {
		t.Fatalf("len(options) = %d, want 48", len(options))
	}

	f, err := s.NewTimeField("Hasta:", clock.MustNew(23, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Display() != "23:00" {
		t.Fatalf("Display() = %q", f.Display())
	}
}

func TestRowLabels(t *testing.T) {
	s, _ := New(WithStep(60), WithHourRange(9, 10))
	labels, err := s.RowLabels()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 || labels[0] != "09:00-09:59" || labels[1] != "10:00-10:59" {
		t.Fatalf("labels = %v", labels)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _ := New()
	b, _ := New()
	_ = a.AddActivity(gym())

	snap, _ := b.Snapshot()
	if snap.Painted() != 0 {
		t.Fatal("sessions share state")
	}
}

func TestEndFieldReachesLastBlock(t *testing.T) {
	s, _ := New()
	end, err := s.NewEndField("Hasta:", clock.MustNew(23, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range len(end.Options()) {
		end.Next()
		if end.Index() == len(end.Options())-1 {
			break
		}
	}
	endTime, err := end.Value()
	if err != nil || endTime != clock.MustNew(23, 59) {
		t.Fatalf("last end option = %s, %v, want 23:59", endTime, err)
	}

	start := clock.MustNew(23, 30)
	if err := s.AddActivity(schedule.Activity{
		Name: "Lectura", Days: []schedule.Day{schedule.Sunday}, Start: &start, End: &endTime, Color: "#336699",
	}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	snap, _ := s.Snapshot()
	last := snap.Rows[len(snap.Rows)-1]
	if last.Label != "23:45-23:59" || last.Cells[schedule.Sunday].Label != "Lectura" {
		t.Fatalf("last row = %s %+v, want 23:45-23:59 painted", last.Label, last.Cells[schedule.Sunday])
	}
}
