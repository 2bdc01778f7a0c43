package schedule

import (
	"fmt"
)

// Configuration bounds.
const (
	MinHour = 0
	MaxHour = 23
	MinStep = 1
	MaxStep = 60
)

// Cell is the content of one (block, day) position.
type Cell struct {
	Label string
	Color string // "#RRGGBB"; empty means no color
}

// IsEmpty reports whether the cell holds neither label nor color.
func (c Cell) IsEmpty() bool {
	return c.Label == "" && c.Color == ""
}

// Grid is the weekly table: one row per Block, one column per Day.
// A Grid never changes shape; reconfiguring means building a new one.
type Grid struct {
	hourMin int
	hourMax int
	step    int

	blocks      []Block
	rowsByIndex map[int][]int // block index -> row positions
	rowsByLabel map[string]int
	cells       [][DaysPerWeek]Cell
}

// ValidateConfig checks an hour range and step.
func ValidateConfig(hourMin, hourMax, step int) error {
	if hourMin < MinHour || hourMin > MaxHour || hourMax < MinHour || hourMax > MaxHour {
		return fmt.Errorf("%w: hours must be within [%d,%d], got [%d,%d]",
			ErrInvalidConfiguration, MinHour, MaxHour, hourMin, hourMax)
	}
	if hourMin > hourMax {
		return fmt.Errorf("%w: hour_min %d is after hour_max %d", ErrInvalidConfiguration, hourMin, hourMax)
	}
	if step < MinStep || step > MaxStep {
		return fmt.Errorf("%w: step must be within [%d,%d] minutes, got %d",
			ErrInvalidConfiguration, MinStep, MaxStep, step)
	}
	return nil
}

// NewGrid builds an empty grid covering hourMin:00 through hourMax:59.
func NewGrid(hourMin, hourMax, step int) (*Grid, error) {
	if err := ValidateConfig(hourMin, hourMax, step); err != nil {
		return nil, err
	}

	blocks := generateBlocks(hourMin, hourMax, step)
	g := &Grid{
		hourMin:     hourMin,
		hourMax:     hourMax,
		step:        step,
		blocks:      blocks,
		rowsByIndex: make(map[int][]int, len(blocks)),
		rowsByLabel: make(map[string]int, len(blocks)),
		cells:       make([][DaysPerWeek]Cell, len(blocks)),
	}
	for row, b := range blocks {
		g.rowsByIndex[b.Index] = append(g.rowsByIndex[b.Index], row)
		g.rowsByLabel[b.Label()] = row
	}
	return g, nil
}

// Step returns the minutes per block the grid was built with.
func (g *Grid) Step() int {
	return g.step
}

// HourRange returns the visible hour range, inclusive.
func (g *Grid) HourRange() (hourMin, hourMax int) {
	return g.hourMin, g.hourMax
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.blocks)
}

// Blocks returns a copy of the rows in order.
func (g *Grid) Blocks() []Block {
	out := make([]Block, len(g.blocks))
	copy(out, g.blocks)
	return out
}

// Days returns the columns in order.
func (g *Grid) Days() []Day {
	return AllDays()
}

// HasIndex reports whether any row carries the block index.
func (g *Grid) HasIndex(index int) bool {
	_, ok := g.rowsByIndex[index]
	return ok
}

// RowByLabel finds the row for an "HH:MM-HH:MM" label.
func (g *Grid) RowByLabel(label string) (int, bool) {
	row, ok := g.rowsByLabel[label]
	return row, ok
}

// Cell returns the content at a row position.
func (g *Grid) Cell(row int, day Day) (Cell, error) {
	if err := g.checkRow(row, day); err != nil {
		return Cell{}, err
	}
	return g.cells[row][day], nil
}

// SetCell overwrites every row carrying index for the given day.
func (g *Grid) SetCell(index int, day Day, label, color string) error {
	rows, ok := g.rowsByIndex[index]
	if !ok || !day.Valid() {
		return fmt.Errorf("%w: index %d, day %d", ErrOutOfRange, index, int(day))
	}
	for _, row := range rows {
		g.cells[row][day] = Cell{Label: label, Color: color}
	}
	return nil
}

// ClearCell empties every row carrying index for the given day. Idempotent.
func (g *Grid) ClearCell(index int, day Day) error {
	return g.SetCell(index, day, "", "")
}

// ClearRow empties a single row position for the given day. Idempotent.
func (g *Grid) ClearRow(row int, day Day) error {
	if err := g.checkRow(row, day); err != nil {
		return err
	}
	g.cells[row][day] = Cell{}
	return nil
}

func (g *Grid) checkRow(row int, day Day) error {
	if row < 0 || row >= len(g.blocks) || !day.Valid() {
		return fmt.Errorf("%w: row %d, day %d", ErrOutOfRange, row, int(day))
	}
	return nil
}
