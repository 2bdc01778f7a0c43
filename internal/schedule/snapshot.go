package schedule

import (
	"strings"
)

// TimeColumn is the header of the first snapshot column.
const TimeColumn = "Hora"

// HeaderStyle is the fixed styling directive for column headers.
type HeaderStyle struct {
	Background string
	Foreground string
	Bold       bool
	Align      string
}

// DefaultHeaderStyle is applied to every header cell.
var DefaultHeaderStyle = HeaderStyle{
	Background: "#4B8BBE",
	Foreground: "#FFFFFF",
	Bold:       true,
	Align:      "center",
}

// CellStyle is the styling of a painted cell.
type CellStyle struct {
	Background string
	Foreground string
	Bold       bool
}

// StyleFor returns the style of a cell and whether it has one.
// Cells without color are rendered unstyled.
func StyleFor(c Cell) (CellStyle, bool) {
	if c.Color == "" {
		return CellStyle{}, false
	}
	return CellStyle{Background: c.Color, Foreground: "#FFFFFF", Bold: true}, true
}

// SnapshotRow is one rendered row.
type SnapshotRow struct {
	Label string
	Block Block
	Cells [DaysPerWeek]Cell
}

// Snapshot is a read-only copy of the grid for rendering.
type Snapshot struct {
	Columns []string // TimeColumn followed by the day names
	Rows    []SnapshotRow
	Header  HeaderStyle
}

// Snapshot copies the current grid content.
func (g *Grid) Snapshot() Snapshot {
	columns := make([]string, 0, DaysPerWeek+1)
	columns = append(columns, TimeColumn)
	for _, d := range AllDays() {
		columns = append(columns, d.Name())
	}

	rows := make([]SnapshotRow, len(g.blocks))
	for i, b := range g.blocks {
		rows[i] = SnapshotRow{
			Label: b.Label(),
			Block: b,
			Cells: g.cells[i],
		}
	}

	return Snapshot{
		Columns: columns,
		Rows:    rows,
		Header:  DefaultHeaderStyle,
	}
}

// Equal reports whether two snapshots have the same shape and content.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.Columns) != len(other.Columns) || len(s.Rows) != len(other.Rows) {
		return false
	}
	for i := range s.Columns {
		if s.Columns[i] != other.Columns[i] {
			return false
		}
	}
	for i := range s.Rows {
		if s.Rows[i] != other.Rows[i] {
			return false
		}
	}
	return s.Header == other.Header
}

// Painted returns the number of non-empty cells.
func (s Snapshot) Painted() int {
	n := 0
	for _, r := range s.Rows {
		for _, c := range r.Cells {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Text renders the snapshot as tab-separated lines, header first.
func (s Snapshot) Text() string {
	var b strings.Builder
	b.WriteString(strings.Join(s.Columns, "\t"))
	b.WriteByte('\n')
	for _, r := range s.Rows {
		b.WriteString(r.Label)
		for _, c := range r.Cells {
			b.WriteByte('\t')
			b.WriteString(c.Label)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
