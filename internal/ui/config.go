package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  horario config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Grid.StepMinutes = promptInt(reader, out, "Block minutes (1-60)", cfg.Grid.StepMinutes)
	cfg.Grid.HourMin = promptInt(reader, out, "First hour (0-23)", cfg.Grid.HourMin)
	cfg.Grid.HourMax = promptInt(reader, out, "Last hour (0-23)", cfg.Grid.HourMax)
	cfg.Picker.DefaultStart = promptValue(reader, out, "Default start (HH:MM)", cfg.Picker.DefaultStart)
	cfg.Picker.DefaultEnd = promptValue(reader, out, "Default end (HH:MM)", cfg.Picker.DefaultEnd)
	cfg.UI.DefaultColor = promptColor(reader, out, cfg.UI.DefaultColor)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, formatHeader("Current configuration:"))
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[grid]")
	_, _ = fmt.Fprintf(out, "  step_minutes  = %d\n", cfg.Grid.StepMinutes)
	_, _ = fmt.Fprintf(out, "  hour_min      = %d\n", cfg.Grid.HourMin)
	_, _ = fmt.Fprintf(out, "  hour_max      = %d\n", cfg.Grid.HourMax)
	_, _ = fmt.Fprintln(out, "\n[picker]")
	_, _ = fmt.Fprintf(out, "  default_start = %s\n", cfg.Picker.DefaultStart)
	_, _ = fmt.Fprintf(out, "  default_end   = %s\n", cfg.Picker.DefaultEnd)
	_, _ = fmt.Fprintln(out, "\n[ui]")
	_, _ = fmt.Fprintf(out, "  theme         = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(out, "  default_color = %s\n", cfg.UI.DefaultColor)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		_, _ = fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptColor(reader *bufio.Reader, out io.Writer, current string) string {
	for {
		value := promptValue(reader, out, "Default color (#RRGGBB)", current)
		if schedule.IsHexColor(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid color %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
