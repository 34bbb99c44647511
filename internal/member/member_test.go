package member

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	m, err := New(Profile{Name: "Bo", Timezone: "UTC-8", Status: StatusVibing}, now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.ID == "" {
		t.Error("New did not generate an id")
	}
	if !m.LastUpdated.Equal(now) {
		t.Errorf("LastUpdated = %v, want %v", m.LastUpdated, now)
	}

	if _, err := New(Profile{Timezone: "UTC+0", Status: StatusVibing}, now); !errors.Is(err, ErrEmptyName) {
		t.Errorf("New(empty name) error = %v, want ErrEmptyName", err)
	}
	if _, err := New(Profile{Name: "Bo", Status: Status("nope")}, now); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("New(bad status) error = %v, want ErrInvalidStatus", err)
	}
}

func TestApplyPartialUpdate(t *testing.T) {
	created := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	m, err := New(Profile{
		Name:       "Bo",
		Timezone:   "UTC-8",
		Status:     StatusVibing,
		WorkHours:  "9-17",
		SleepHours: "23-7",
	}, created)
	if err != nil {
		t.Fatal(err)
	}

	status := StatusPair
	work := "10-18"
	m.Apply(Update{Status: &status, WorkHours: &work}, later)

	if m.Status != StatusPair || m.WorkHours != "10-18" {
		t.Errorf("updated fields = %q/%q, want pair/10-18", m.Status, m.WorkHours)
	}
	if m.Name != "Bo" || m.SleepHours != "23-7" {
		t.Errorf("untouched fields changed: %+v", m)
	}
	if !m.LastUpdated.Equal(later) {
		t.Errorf("LastUpdated = %v, want %v", m.LastUpdated, later)
	}
}

func TestLocalTime(t *testing.T) {
	now := time.Date(2025, 6, 16, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		tz   string
		want string
	}{
		{name: "utc", tz: "UTC+0", want: "20:00"},
		{name: "pacific", tz: "UTC-8", want: "12:00"},
		{name: "india half hour", tz: "UTC+5.5", want: "01:30"},
		{name: "nepal quarter", tz: "UTC+5.75", want: "01:45"},
		{name: "unparsable is utc", tz: "somewhere", want: "20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{Timezone: tt.tz}
			if got := p.LocalTime(now).Format("15:04"); got != tt.want {
				t.Errorf("LocalTime() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCollaborator(t *testing.T) {
	p := Profile{Name: "Ana", Timezone: "UTC+5.5", WorkHours: "9-17", SleepHours: "23-7"}
	c := p.Collaborator()
	if c.Name != "Ana" || c.Offset != 5.5 || c.WorkHours != "9-17" || c.SleepHours != "23-7" {
		t.Errorf("Collaborator() = %+v", c)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if Status("party").Valid() {
		t.Error("unknown status reported valid")
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("deepwork")
	if err != nil || got != StatusDeepwork {
		t.Errorf("ParseStatus(deepwork) = (%q, %v)", got, err)
	}
	if _, err := ParseStatus("partying"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ParseStatus(partying) error = %v, want ErrInvalidStatus", err)
	}
}

func TestStatusInfoCoversAllStatuses(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range AllStatuses {
		info := s.Info()
		if info.Label == "" || info.Icon == "" {
			t.Errorf("status %q has incomplete display info: %+v", s, info)
		}
		if seen[info.Label] {
			t.Errorf("status %q reuses label %q", s, info.Label)
		}
		seen[info.Label] = true
	}

	// Unknown statuses render as vibing rather than blowing up.
	if got := Status("corrupt").Info(); got.Label != StatusVibing.Info().Label {
		t.Errorf("unknown status info = %+v, want vibing fallback", got)
	}
}

func TestRandomFlavor(t *testing.T) {
	flavors := map[string]bool{}
	for _, f := range StatusDeepwork.Info().Flavor {
		flavors[f] = true
	}
	for i := 0; i < 20; i++ {
		if got := StatusDeepwork.RandomFlavor(); !flavors[got] {
			t.Fatalf("RandomFlavor returned %q, not in the status flavor set", got)
		}
	}
}
