// Package tui provides the terminal editor for the weekly schedule grid.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/session"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // Adding an activity
	ModeClear       // Clearing a cell by day and row label
)

func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeClear:
		return "clear"
	default:
		return "normal"
	}
}

// Position is a cursor position in the grid.
type Position struct {
	Day int // 0=Lunes, 6=Domingo
	Row int // Row index in the live grid
}

// statusDuration is how long a status message stays on screen.
const statusDuration = 3 * time.Second

type clearStatusMsg struct{}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	session *session.Session
	config  *config.Config
	logger  *zap.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode         Mode
	cursor       Position
	scrollOffset int

	// Forms
	form  activityForm
	clear clearForm

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time

	copyFn func(string) error
}

// New creates a new TUI model over a session.
func New(sess *session.Session, cfg *config.Config, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		logger.Warn("theme_fallback", zap.String("theme", cfg.UI.Theme), zap.Error(err))
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	defStart, defEnd := cfg.PickerDefaults()
	start, err := sess.NewTimeField("Inicio", defStart)
	if err != nil {
		return nil, err
	}
	end, err := sess.NewEndField("Fin", defEnd)
	if err != nil {
		return nil, err
	}

	m := &Model{
		session: sess,
		config:  cfg,
		logger:  logger,
		theme:   t,
		styles:  styles,
		mode:    ModeNormal,
		form:    newActivityForm(start, end, cfg.UI.DefaultColor),
		clear:   newClearForm(schedule.Monday.Code(), ""),
		copyFn:  clipboard.WriteAll,
	}
	if _, err := sess.Grid(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI.
func Run(sess *session.Session, cfg *config.Config, logger *zap.Logger) error {
	model, err := New(sess, cfg, logger)
	if err != nil {
		return err
	}
	model.focusNow(time.Now())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case clearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}
	return m, nil
}

// setStatus shows a message on the status line and schedules its removal.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// rowCount returns the number of rows in the live grid.
func (m Model) rowCount() int {
	g, err := m.session.Grid()
	if err != nil {
		return 0
	}
	return g.Len()
}

// currentRowLabel returns the label of the row under the cursor.
func (m Model) currentRowLabel() string {
	g, err := m.session.Grid()
	if err != nil {
		return ""
	}
	blocks := g.Blocks()
	if m.cursor.Row < 0 || m.cursor.Row >= len(blocks) {
		return ""
	}
	return blocks[m.cursor.Row].Label()
}

// clampCursor keeps the cursor inside the live grid.
func (m *Model) clampCursor() {
	rows := m.rowCount()
	m.cursor.Day = min(max(m.cursor.Day, 0), schedule.DaysPerWeek-1)
	if rows == 0 {
		m.cursor.Row = 0
	} else {
		m.cursor.Row = min(max(m.cursor.Row, 0), rows-1)
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll offset so the cursor row is shown.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor.Row < m.scrollOffset {
		m.scrollOffset = m.cursor.Row
	}
	if m.cursor.Row >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Row - visible + 1
	}
	maxOffset := max(0, m.rowCount()-visible)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxOffset)
}

// focusNow moves the cursor to today's column and the block holding now.
// The row is left alone when now is outside the visible hours.
func (m *Model) focusNow(now time.Time) {
	m.cursor.Day = (int(now.Weekday()) + 6) % schedule.DaysPerWeek
	g, err := m.session.Grid()
	if err != nil {
		return
	}
	t, err := clock.New(now.Hour(), now.Minute())
	if err != nil {
		return
	}
	for i, b := range g.Blocks() {
		if b.Contains(t) {
			m.cursor.Row = i
			break
		}
	}
	m.ensureCursorVisible()
}
