// Package collab computes overlapping availability windows for a roster
// of participants spread across timezones.
package collab

import (
	"fmt"
	"slices"

	"github.com/crewsync/crewsync/internal/timerange"
)

// Participant is a roster entry reduced to what the scan needs. Offset is
// the UTC offset in hours and may be fractional.
type Participant struct {
	Name       string
	Offset     float64
	WorkHours  string
	SleepHours string
}

// DayPeriod labels the part of day a window falls in, in UTC.
type DayPeriod int

const (
	PeriodEarlyMorning DayPeriod = iota
	PeriodMorning
	PeriodAfternoon
	PeriodEvening
	PeriodLateNight
)

// PeriodOf classifies a UTC hour into a day period. Boundaries are
// half-open and checked in fixed order; late night wraps 22:00..5:00.
func PeriodOf(hour int) DayPeriod {
	switch {
	case hour >= 5 && hour < 9:
		return PeriodEarlyMorning
	case hour >= 9 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	case hour >= 17 && hour < 22:
		return PeriodEvening
	default:
		return PeriodLateNight
	}
}

// String returns the display label for the period.
func (p DayPeriod) String() string {
	switch p {
	case PeriodEarlyMorning:
		return "early morning"
	case PeriodMorning:
		return "morning"
	case PeriodAfternoon:
		return "afternoon"
	case PeriodEvening:
		return "evening"
	case PeriodLateNight:
		return "late night"
	}
	return fmt.Sprintf("DayPeriod(%d)", int(p))
}

// Emoji returns the period's dashboard marker.
func (p DayPeriod) Emoji() string {
	switch p {
	case PeriodEarlyMorning:
		return "🌅"
	case PeriodMorning:
		return "☀️"
	case PeriodAfternoon:
		return "🌞"
	case PeriodEvening:
		return "🌆"
	case PeriodLateNight:
		return "🌙"
	}
	return "🕐"
}

// Window is a span of UTC hours during which the listed members are all
// awake. Members preserves roster order; StartHour is inclusive, EndHour
// exclusive (EndHour 0 means the span runs to midnight).
type Window struct {
	StartHour int
	EndHour   int
	Members   []string
	Period    DayPeriod
}

// FindWindows scans all 24 UTC hours and returns the merged availability
// windows for the combined roster of self plus team.
//
// A participant is available at an hour when they are not inside their
// sleep range at the corresponding local hour; work hours do not exclude
// availability. Local hours keep their fractional component when the
// offset is fractional and are compared unrounded against the integer
// range bounds. Hours with fewer than two available participants produce
// no window.
//
// The result is pure and deterministic for a fixed roster: the scan
// covers the whole day rather than being anchored to the current time.
func FindWindows(self Participant, team []Participant) []Window {
	roster := make([]Participant, 0, len(team)+1)
	roster = append(roster, self)
	roster = append(roster, team...)

	var windows []Window
	for hour := 0; hour < 24; hour++ {
		var available []string
		for _, p := range roster {
			localHour := timerange.LocalHour(hour, p.Offset)
			if !timerange.HourInRange(localHour, p.SleepHours) {
				available = append(available, p.Name)
			}
		}
		if len(available) >= 2 {
			windows = append(windows, Window{
				StartHour: hour,
				EndHour:   (hour + 1) % 24,
				Members:   available,
				Period:    PeriodOf(hour),
			})
		}
	}

	return mergeConsecutive(windows)
}

// mergeConsecutive folds adjacent hourly windows into longer spans. Two
// windows merge only when they are contiguous, share a period, and list
// the same members in the same order; an equal member set in a different
// order stays split, since roster order is stable within a single scan.
func mergeConsecutive(windows []Window) []Window {
	if len(windows) == 0 {
		return nil
	}

	merged := make([]Window, 0, len(windows))
	current := windows[0]
	for _, next := range windows[1:] {
		if current.EndHour == next.StartHour &&
			current.Period == next.Period &&
			slices.Equal(current.Members, next.Members) {
			current.EndHour = next.EndHour
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	// The per-hour threshold already enforces this; keep the guard so a
	// merged window can never surface with a single member.
	merged = slices.DeleteFunc(merged, func(w Window) bool {
		return len(w.Members) < 2
	})
	return merged
}

// TopWindows returns the n windows with the most members, largest first.
// The sort is stable, so equally sized windows keep their scan order.
// A non-positive n means no limit. The input slice is not modified.
func TopWindows(windows []Window, n int) []Window {
	sorted := slices.Clone(windows)
	slices.SortStableFunc(sorted, func(a, b Window) int {
		return len(b.Members) - len(a.Members)
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Hours returns the window length in hours, accounting for spans that
// run to midnight.
func (w Window) Hours() int {
	if w.EndHour > w.StartHour {
		return w.EndHour - w.StartHour
	}
	return 24 - w.StartHour + w.EndHour
}

// FormatHourSpan renders the window bounds as a 12-hour clock span,
// e.g. "9 AM - 1 PM".
func (w Window) FormatHourSpan() string {
	return fmt.Sprintf("%s - %s", formatHour(w.StartHour), formatHour(w.EndHour))
}

func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
