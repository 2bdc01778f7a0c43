package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/picker"
	"github.com/javiermolinar/horario/internal/schedule"
)

// ErrInvalidPlan is returned when a plan file cannot be turned into activities.
var ErrInvalidPlan = errors.New("invalid plan")

// planFile is a batch of activities read from TOML:
//
//	[[activity]]
//	name  = "Gym"
//	days  = ["L", "M"]   # or ["L,M"]
//	start = "09:00"
//	end   = "10:00"
//	color = "#FF0000"
type planFile struct {
	Activities []planActivity `toml:"activity"`
}

type planActivity struct {
	Name  string   `toml:"name"`
	Days  []string `toml:"days"`
	Start string   `toml:"start"`
	End   string   `toml:"end"`
	Color string   `toml:"color"`
}

// loadPlan reads activities from a TOML file. Activities without a color get
// defaultColor.
func loadPlan(path, defaultColor string) ([]schedule.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return parsePlan(data, defaultColor)
}

func parsePlan(data []byte, defaultColor string) ([]schedule.Activity, error) {
	var pf planFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	activities := make([]schedule.Activity, 0, len(pf.Activities))
	for i, pa := range pf.Activities {
		a, err := pa.activity(defaultColor)
		if err != nil {
			return nil, fmt.Errorf("%w: activity %d: %w", ErrInvalidPlan, i+1, err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func (pa planActivity) activity(defaultColor string) (schedule.Activity, error) {
	days, err := schedule.ParseDays(strings.Join(pa.Days, ","))
	if err != nil {
		return schedule.Activity{}, err
	}

	start, err := planTime(pa.Start)
	if err != nil {
		return schedule.Activity{}, err
	}
	end, err := planTime(pa.End)
	if err != nil {
		return schedule.Activity{}, err
	}

	color := strings.TrimSpace(pa.Color)
	if color == "" {
		color = defaultColor
	}
	return schedule.Activity{
		Name:  pa.Name,
		Days:  days,
		Start: start,
		End:   end,
		Color: color,
	}, nil
}

// planTime parses an optional time. Empty means not given.
func planTime(s string) (*clock.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := picker.ResolveSelection(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
