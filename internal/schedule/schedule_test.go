package schedule

import (
	"testing"
	"time"

	"github.com/crewsync/crewsync/internal/member"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 15, hour, 15, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		hour  int
		work  string
		sleep string
		want  Period
	}{
		{name: "working", hour: 10, work: "9-17", sleep: "23-7", want: PeriodWork},
		{name: "free evening", hour: 20, work: "9-17", sleep: "23-7", want: PeriodAvailable},
		{name: "asleep", hour: 2, work: "9-17", sleep: "23-7", want: PeriodSleep},
		{name: "sleep start", hour: 23, work: "9-17", sleep: "23-7", want: PeriodSleep},
		{name: "sleep end exclusive", hour: 7, work: "9-17", sleep: "23-7", want: PeriodAvailable},
		{name: "work start", hour: 9, work: "9-17", sleep: "23-7", want: PeriodWork},
		{name: "work end exclusive", hour: 17, work: "9-17", sleep: "23-7", want: PeriodAvailable},
		{name: "no ranges", hour: 12, work: "", sleep: "", want: PeriodAvailable},
		{name: "no sleep range", hour: 3, work: "9-17", sleep: "", want: PeriodAvailable},

		// Sleep wins over work when the ranges overlap, even fully.
		{name: "degenerate overlap", hour: 12, work: "9-17", sleep: "9-17", want: PeriodSleep},
		{name: "partial overlap", hour: 9, work: "9-17", sleep: "8-10", want: PeriodSleep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(at(tt.hour), tt.work, tt.sleep)
			if got != tt.want {
				t.Errorf("Classify(hour=%d, %q, %q) = %v, want %v", tt.hour, tt.work, tt.sleep, got, tt.want)
			}
		})
	}
}

func TestSuggestStatus(t *testing.T) {
	tests := []struct {
		name  string
		hour  int
		work  string
		sleep string
		want  member.Status
	}{
		{name: "sleeping suggests sleep", hour: 2, work: "9-17", sleep: "23-7", want: member.StatusSleep},
		{name: "working suggests deepwork", hour: 11, work: "9-17", sleep: "23-7", want: member.StatusDeepwork},
		{name: "free suggests vibing", hour: 19, work: "9-17", sleep: "23-7", want: member.StatusVibing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestStatus(at(tt.hour), tt.work, tt.sleep)
			if got != tt.want {
				t.Errorf("SuggestStatus(hour=%d) = %q, want %q", tt.hour, got, tt.want)
			}
		})
	}
}

func TestAutoStatus(t *testing.T) {
	// Disabled auto mode means "apply no change", regardless of schedule.
	if st, ok := AutoStatus(at(2), "9-17", "23-7", false); ok {
		t.Errorf("AutoStatus(disabled) = (%q, true), want ok=false", st)
	}

	st, ok := AutoStatus(at(2), "9-17", "23-7", true)
	if !ok || st != member.StatusSleep {
		t.Errorf("AutoStatus(enabled, sleeping) = (%q, %v), want (%q, true)", st, ok, member.StatusSleep)
	}
}

func TestPresetFor(t *testing.T) {
	p := PresetFor("9-17", "23-7")
	if p == nil || p.Name != "Standard 9-5" {
		t.Fatalf("PresetFor(9-17, 23-7) = %+v, want Standard 9-5", p)
	}

	if p := PresetFor("9-17", "22-6"); p != nil {
		t.Errorf("PresetFor(unmatched) = %+v, want nil", p)
	}

	// The always-available preset has an empty sleep range.
	p = PresetFor("0-24", "")
	if p == nil || p.Name != "Always Available" {
		t.Fatalf("PresetFor(0-24, \"\") = %+v, want Always Available", p)
	}
}

func TestPresetByName(t *testing.T) {
	p := PresetByName("Night Owl")
	if p == nil || p.WorkHours != "14-22" {
		t.Fatalf("PresetByName(Night Owl) = %+v, want work 14-22", p)
	}

	// Case-insensitive lookup.
	if p := PresetByName("night owl"); p == nil {
		t.Error("PresetByName should match case-insensitively")
	}

	if p := PresetByName("Graveyard"); p != nil {
		t.Errorf("PresetByName(unknown) = %+v, want nil", p)
	}
}
