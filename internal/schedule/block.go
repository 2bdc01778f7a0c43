package schedule

import (
	"fmt"

	"github.com/javiermolinar/horario/internal/clock"
)

// Block is one grid row: a time interval with an inclusive end minute.
type Block struct {
	Index int        // Start minutes / step
	Start clock.Time // First minute of the block
	End   clock.Time // Last minute of the block (inclusive)
}

// Label formats the block as "HH:MM-HH:MM".
func (b Block) Label() string {
	return fmt.Sprintf("%s-%s", b.Start, b.End)
}

// Contains reports whether t falls inside the block.
func (b Block) Contains(t clock.Time) bool {
	return t >= b.Start && t <= b.End
}

// generateBlocks lists the blocks for hours hourMin..hourMax. The minute loop
// restarts at :00 every hour, so when step does not divide 60 the last block
// of each hour is cut at :59.
func generateBlocks(hourMin, hourMax, step int) []Block {
	blocks := make([]Block, 0, (hourMax-hourMin+1)*((59/step)+1))
	for h := hourMin; h <= hourMax; h++ {
		lastMinute := h*60 + 59
		for m := 0; m < 60; m += step {
			start := h*60 + m
			end := min(start+step-1, lastMinute)
			blocks = append(blocks, Block{
				Index: start / step,
				Start: clock.Time(start),
				End:   clock.Time(end),
			})
		}
	}
	return blocks
}
