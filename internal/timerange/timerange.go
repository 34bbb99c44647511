// Package timerange implements hour-range and UTC-offset parsing for
// schedules expressed as "HH-HH" strings and "UTC+N" timezone labels.
package timerange

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// offsetPattern matches timezone labels like "UTC+5.5", "UTC-8" or the
// legacy "GMT+2" form still found in old snapshots.
var offsetPattern = regexp.MustCompile(`(GMT|UTC)([+-])(\d+(?:\.\d+)?)`)

// ParseOffset extracts the signed, possibly fractional UTC offset in hours
// from a timezone label. Unrecognized input yields 0.
func ParseOffset(tz string) float64 {
	m := offsetPattern.FindStringSubmatch(tz)
	if m == nil {
		return 0
	}
	hours, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0
	}
	if m[2] == "-" {
		return -hours
	}
	return hours
}

// HourInRange reports whether hour falls inside the "HH-HH" range r.
// An empty range matches nothing. A range whose start is greater than its
// end wraps past midnight, e.g. "23-7" covers 23:00..24:00 and 0:00..7:00.
// Start bounds are inclusive, end bounds exclusive. The hour may be
// fractional (offsets like +5.5 produce local hours like 1.5); it is
// compared directly against the integer bounds.
func HourInRange(hour float64, r string) bool {
	if r == "" {
		return false
	}

	start, okStart := parseBound(r)
	rest := ""
	if i := indexDash(r); i >= 0 {
		rest = r[i+1:]
	}
	end, okEnd := parseBound(rest)

	// Unparsable bounds never match, mirroring comparisons against NaN.
	if !okStart || !okEnd {
		return false
	}

	if start <= end {
		return hour >= start && hour < end
	}
	// Crosses midnight (e.g. 23-7)
	return hour >= start || hour < end
}

// TimeInRange reports whether the local hour of t falls inside r.
func TimeInRange(t time.Time, r string) bool {
	return HourInRange(float64(t.Hour()), r)
}

// LocalHour converts a UTC hour to the local hour for the given offset.
// The arithmetic stays in floating point so fractional offsets carry
// through; the result is wrapped into [0, 24).
func LocalHour(utcHour int, offset float64) float64 {
	return math.Mod(math.Mod(float64(utcHour)+offset, 24)+24, 24)
}

// indexDash returns the position of the first range separator, or -1.
func indexDash(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return i
		}
	}
	return -1
}

// parseBound reads a leading non-negative integer from s, the way a
// lenient integer coercion would: digits are consumed until the first
// non-digit, and a string with no leading digits parses to nothing.
func parseBound(s string) (float64, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return float64(n), true
}
