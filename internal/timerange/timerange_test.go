package timerange

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "utc positive", input: "UTC+5", want: 5},
		{name: "utc negative", input: "UTC-8", want: -8},
		{name: "utc zero", input: "UTC+0", want: 0},
		{name: "fractional india", input: "UTC+5.5", want: 5.5},
		{name: "fractional nepal", input: "UTC+5.75", want: 5.75},
		{name: "fractional newfoundland", input: "UTC-3.5", want: -3.5},
		{name: "legacy gmt prefix", input: "GMT+2", want: 2},
		{name: "legacy gmt negative", input: "GMT-10", want: -10},
		{name: "extreme east", input: "UTC+14", want: 14},
		{name: "no prefix", input: "+5", want: 0},
		{name: "bare name", input: "Pacific/Auckland", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "not a timezone", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOffset(tt.input)
			if got != tt.want {
				t.Errorf("ParseOffset(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHourInRange(t *testing.T) {
	tests := []struct {
		name string
		hour float64
		r    string
		want bool
	}{
		// Simple range, half-open
		{name: "start inclusive", hour: 9, r: "9-17", want: true},
		{name: "middle", hour: 12, r: "9-17", want: true},
		{name: "end exclusive", hour: 17, r: "9-17", want: false},
		{name: "before start", hour: 8, r: "9-17", want: false},

		// Midnight wraparound
		{name: "wrap start", hour: 23, r: "23-7", want: true},
		{name: "wrap midnight", hour: 0, r: "23-7", want: true},
		{name: "wrap before end", hour: 6, r: "23-7", want: true},
		{name: "wrap end exclusive", hour: 7, r: "23-7", want: false},
		{name: "wrap daytime", hour: 12, r: "23-7", want: false},

		// Fractional hours against integer bounds
		{name: "fractional inside", hour: 9.5, r: "9-17", want: true},
		{name: "fractional past end", hour: 16.5, r: "9-17", want: true},
		{name: "fractional outside", hour: 17.5, r: "9-17", want: false},
		{name: "fractional wrap", hour: 23.5, r: "23-7", want: true},
		{name: "fractional wrap end", hour: 6.5, r: "23-7", want: true},

		// Degenerate inputs degrade to false rather than erroring
		{name: "empty range", hour: 12, r: "", want: false},
		{name: "missing separator", hour: 12, r: "917", want: false},
		{name: "non numeric start", hour: 12, r: "x-17", want: false},
		{name: "non numeric end", hour: 12, r: "9-y", want: false},
		{name: "only separator", hour: 12, r: "-", want: false},

		// Full-day range
		{name: "full day", hour: 12, r: "0-24", want: true},
		{name: "full day midnight", hour: 0, r: "0-24", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourInRange(tt.hour, tt.r)
			if got != tt.want {
				t.Errorf("HourInRange(%v, %q) = %v, want %v", tt.hour, tt.r, got, tt.want)
			}
		})
	}
}

func TestTimeInRange(t *testing.T) {
	tests := []struct {
		name string
		hour int
		r    string
		want bool
	}{
		{name: "working hours", hour: 10, r: "9-17", want: true},
		{name: "after hours", hour: 20, r: "9-17", want: false},
		{name: "asleep", hour: 2, r: "23-7", want: true},
		{name: "empty range", hour: 10, r: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2025, 6, 15, tt.hour, 30, 0, 0, time.UTC)
			got := TimeInRange(at, tt.r)
			if got != tt.want {
				t.Errorf("TimeInRange(%v, %q) = %v, want %v", at, tt.r, got, tt.want)
			}
		})
	}
}

func TestLocalHour(t *testing.T) {
	tests := []struct {
		name    string
		utcHour int
		offset  float64
		want    float64
	}{
		{name: "no offset", utcHour: 10, offset: 0, want: 10},
		{name: "positive offset", utcHour: 10, offset: 5, want: 15},
		{name: "negative offset", utcHour: 3, offset: -8, want: 19},
		{name: "wraps forward", utcHour: 22, offset: 5, want: 3},
		{name: "wraps backward", utcHour: 2, offset: -5, want: 21},
		{name: "fractional offset", utcHour: 20, offset: 5.5, want: 1.5},
		{name: "fractional negative", utcHour: 1, offset: -3.5, want: 21.5},
		{name: "extreme east", utcHour: 12, offset: 14, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalHour(tt.utcHour, tt.offset)
			if got != tt.want {
				t.Errorf("LocalHour(%d, %v) = %v, want %v", tt.utcHour, tt.offset, got, tt.want)
			}
		})
	}
}
