// Package ui provides the command-line interface for horario.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/logging"
	"github.com/javiermolinar/horario/internal/session"
	"github.com/javiermolinar/horario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool   // Enable debug logging
	logPath string // Debug log file
	noColor bool   // Plain output for render and config
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "horario",
		Short: "A weekly schedule grid editor",
		Long: `Horario paints recurring activities onto a weekly grid of time blocks.

Pick a block size and the visible hours, then add activities by name,
days, start and end time and a color.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				disableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	a.root.PersistentFlags().StringVar(&a.logPath, "log-file", logging.DefaultPath, "Debug log file")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.optionsCmd())
	a.root.AddCommand(a.renderCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "horario %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) newLogger() (*zap.Logger, func(), error) {
	return logging.New(logging.Options{Debug: a.debug, Path: a.logPath})
}

// newSession builds a session from the grid settings in the config.
func (a *App) newSession(logger *zap.Logger, step, hourMin, hourMax int) (*session.Session, error) {
	sess, err := session.New(
		session.WithStep(step),
		session.WithHourRange(hourMin, hourMax),
		session.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Grid(); err != nil {
		return nil, err
	}
	return sess, nil
}

func (a *App) runTUI() error {
	logger, closeLog, err := a.newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	g := a.config.Grid
	sess, err := a.newSession(logger, g.StepMinutes, g.HourMin, g.HourMax)
	if err != nil {
		return err
	}
	return tui.Run(sess, a.config, logger)
}
