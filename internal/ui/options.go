package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/picker"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/session"
)

func (a *App) optionsCmd() *cobra.Command {
	var (
		step  int
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the selectable times for a block size",
		Long: `List the times offered by the start and end pickers.

Times run from --start up to, not including, --end in steps of --step minutes.

Example:
  horario options --step 30
  horario options --start 08:00 --end 12:00 --step 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var options []string
			var err error
			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				options, err = windowOptions(start, end, step)
			} else {
				options, err = pickerOptions(step)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, o := range options {
				if _, err := fmt.Fprintln(out, o); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&step, "step", a.config.Grid.StepMinutes, "Minutes between options (1-60)")
	cmd.Flags().StringVar(&start, "start", picker.DefaultStart.String(), "First time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", picker.DefaultEnd.String(), "Options stop before this time (HH:MM)")

	return cmd
}

// pickerOptions returns the options the editor offers at a step.
func pickerOptions(step int) ([]string, error) {
	sess, err := session.New(session.WithStep(step))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", schedule.Message(err), err)
	}
	return sess.PickerOptions()
}

func windowOptions(start, end string, step int) ([]string, error) {
	from, err := picker.ResolveSelection(start)
	if err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	to, err := picker.ResolveSelection(end)
	if err != nil {
		return nil, fmt.Errorf("--end: %w", err)
	}
	return picker.GenerateOptions(from, to, step)
}
