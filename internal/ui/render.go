package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/schedule"
)

// Column widths for the printed grid.
const (
	timeColWidth   = 11
	minDayColWidth = 3
	maxDayColWidth = 16
)

func (a *App) renderCmd() *cobra.Command {
	var (
		step    int
		hourMin int
		hourMax int
		plan    string
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a grid, optionally painted from a plan file",
		Long: `Build a grid and print it.

With --plan, activities are read from a TOML file and painted in order:

  [[activity]]
  name  = "Gym"
  days  = ["L", "M"]
  start = "09:00"
  end   = "10:00"
  color = "#FF0000"

Example:
  horario render --from 8 --to 12 --step 30 --plan semana.toml
  horario render --plain > semana.tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := a.newLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			sess, err := a.newSession(logger, step, hourMin, hourMax)
			if err != nil {
				return fmt.Errorf("%s: %w", schedule.Message(err), err)
			}

			if plan != "" {
				path, err := resolvePath(plan)
				if err != nil {
					return err
				}
				activities, err := loadPlan(path, a.config.UI.DefaultColor)
				if err != nil {
					return err
				}
				for _, act := range activities {
					if err := sess.AddActivity(act); err != nil {
						return fmt.Errorf("%q: %s: %w", act.Name, schedule.Message(err), err)
					}
				}
			}

			snap, err := sess.Snapshot()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plain {
				_, err := io.WriteString(out, snap.Text())
				return err
			}
			printGrid(out, snap, dayColWidth(termWidth()))
			return nil
		},
	}

	g := a.config.Grid
	cmd.Flags().IntVar(&step, "step", g.StepMinutes, "Minutes per block (1-60)")
	cmd.Flags().IntVar(&hourMin, "from", g.HourMin, "First visible hour (0-23)")
	cmd.Flags().IntVar(&hourMax, "to", g.HourMax, "Last visible hour (0-23)")
	cmd.Flags().StringVar(&plan, "plan", "", "TOML file with activities to paint")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print tab-separated text without colors")

	return cmd
}

// dayColWidth fits seven day columns next to the time column.
func dayColWidth(termW int) int {
	avail := termW - timeColWidth - schedule.DaysPerWeek
	return min(max(avail/schedule.DaysPerWeek, minDayColWidth), maxDayColWidth)
}

// printGrid writes the snapshot as a colored table.
func printGrid(w io.Writer, snap schedule.Snapshot, colWidth int) {
	header := headerColor(snap.Header)
	var b strings.Builder
	for i, col := range snap.Columns {
		width := colWidth
		if i == 0 {
			width = timeColWidth
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(header.Sprint(center(fit(col, width), width)))
	}
	_, _ = fmt.Fprintln(w, b.String())

	for _, r := range snap.Rows {
		b.Reset()
		b.WriteString(formatMuted(pad(r.Label, timeColWidth)))
		for _, c := range r.Cells {
			b.WriteByte(' ')
			text := pad(fit(c.Label, colWidth), colWidth)
			if cc := cellColor(c); cc != nil {
				b.WriteString(cc.Sprint(text))
			} else {
				b.WriteString(text)
			}
		}
		_, _ = fmt.Fprintln(w, b.String())
	}

	if n := snap.Painted(); n > 0 {
		_, _ = fmt.Fprintln(w, formatStats(fmt.Sprintf("%d celdas pintadas", n)))
	}
}

func fit(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
}

func center(s string, width int) string {
	gap := max(0, width-ansi.StringWidth(s))
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
