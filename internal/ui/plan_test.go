package ui

import (
	"errors"
	"testing"

	"github.com/javiermolinar/horario/internal/clock"
	"github.com/javiermolinar/horario/internal/schedule"
)

func TestParsePlan(t *testing.T) {
	data := []byte(`
[[activity]]
name  = "Gym"
days  = ["L", "Miércoles"]
start = "09:00"
end   = "10:00"
color = "#FF0000"

[[activity]]
name  = "Piano"
days  = ["V"]
start = "18:00"
end   = "18:45"
`)

	got, err := parsePlan(data, "#4233DC")
	if err != nil {
		t.Fatalf("parsePlan() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	gym := got[0]
	if gym.Name != "Gym" || gym.Color != "#FF0000" {
		t.Errorf("gym = %+v", gym)
	}
	if len(gym.Days) != 2 || gym.Days[0] != schedule.Monday || gym.Days[1] != schedule.Wednesday {
		t.Errorf("gym days = %v", gym.Days)
	}
	if gym.Start == nil || *gym.Start != clock.MustNew(9, 0) {
		t.Errorf("gym start = %v", gym.Start)
	}
	if got[1].Color != "#4233DC" {
		t.Errorf("piano color = %q, want default", got[1].Color)
	}
}

func TestParsePlan_MissingTimesStayNil(t *testing.T) {
	got, err := parsePlan([]byte(`
[[activity]]
name = "Gym"
days = ["L"]
`), "#4233DC")
	if err != nil {
		t.Fatalf("parsePlan() error = %v", err)
	}
	if got[0].Start != nil || got[0].End != nil {
		t.Errorf("times = %v/%v, want nil", got[0].Start, got[0].End)
	}
	if err := got[0].Validate(); !errors.Is(err, schedule.ErrMissingField) {
		t.Errorf("Validate() = %v, want ErrMissingField", err)
	}
}

func TestParsePlan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"bad toml", `[[activity]`, ErrInvalidPlan},
		{"bad day", "[[activity]]\nname = \"x\"\ndays = [\"Z\"]", schedule.ErrUnknownDay},
		{"bad time", "[[activity]]\nname = \"x\"\ndays = [\"L\"]\nstart = \"9:30\"", clock.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePlan([]byte(tt.data), "#4233DC")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parsePlan() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPlan) {
				t.Errorf("parsePlan() error = %v, want ErrInvalidPlan", err)
			}
		})
	}
}

func TestParsePlan_CommaSeparatedDays(t *testing.T) {
	got, err := parsePlan([]byte(`
[[activity]]
name = "Gym"
days = ["L,M", "l"]
start = "07:00"
end = "08:00"
`), "#4233DC")
	if err != nil {
		t.Fatalf("parsePlan() error = %v", err)
	}
	if days := got[0].Days; len(days) != 2 || days[0] != schedule.Monday || days[1] != schedule.Wednesday {
		t.Errorf("days = %v, want [L M]", days)
	}
}
