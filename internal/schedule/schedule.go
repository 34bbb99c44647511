// Package schedule classifies the current period of a work/sleep schedule
// and derives suggested presence statuses from it.
package schedule

import (
	"time"

	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/timerange"
)

// Period is the current slice of a participant's day.
type Period int

const (
	PeriodAvailable Period = iota
	PeriodWork
	PeriodSleep
)

// String returns the period's display name.
func (p Period) String() string {
	switch p {
	case PeriodWork:
		return "work"
	case PeriodSleep:
		return "sleep"
	}
	return "available"
}

// Classify determines the current period from the local time against the
// work and sleep ranges. Sleep takes priority: when the ranges overlap,
// an hour inside both classifies as sleep.
func Classify(at time.Time, workHours, sleepHours string) Period {
	if timerange.TimeInRange(at, sleepHours) {
		return PeriodSleep
	}
	if timerange.TimeInRange(at, workHours) {
		return PeriodWork
	}
	return PeriodAvailable
}

// SuggestStatus maps the current period to a presence status: sleep,
// deepwork while working, vibing otherwise. It ignores any manually set
// status.
func SuggestStatus(at time.Time, workHours, sleepHours string) member.Status {
	switch Classify(at, workHours, sleepHours) {
	case PeriodSleep:
		return member.StatusSleep
	case PeriodWork:
		return member.StatusDeepwork
	}
	return member.StatusVibing
}

// AutoStatus returns the schedule-derived status when auto mode is on.
// ok is false when auto mode is disabled, meaning no change should be
// applied; callers must only overwrite a status when ok is true and the
// suggestion differs from the current value.
func AutoStatus(at time.Time, workHours, sleepHours string, enabled bool) (status member.Status, ok bool) {
	if !enabled {
		return "", false
	}
	return SuggestStatus(at, workHours, sleepHours), true
}
