package collab

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestEventURL(t *testing.T) {
	w := Window{
		StartHour: 17,
		EndHour:   22,
		Members:   []string{"ana", "pac"},
		Period:    PeriodEvening,
	}
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	raw := EventURL(w, date)
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("EventURL produced unparsable URL %q: %v", raw, err)
	}

	if u.Host != "calendar.google.com" {
		t.Errorf("host = %q, want calendar.google.com", u.Host)
	}

	q := u.Query()
	if got := q.Get("action"); got != "TEMPLATE" {
		t.Errorf("action = %q, want TEMPLATE", got)
	}
	if got := q.Get("dates"); got != "20250615T170000Z/20250615T220000Z" {
		t.Errorf("dates = %q, want 20250615T170000Z/20250615T220000Z", got)
	}
	if got := q.Get("details"); got != "Available: ana, pac" {
		t.Errorf("details = %q, want member list", got)
	}
	if got := q.Get("text"); !strings.Contains(got, "evening") {
		t.Errorf("text = %q, want the period label mentioned", got)
	}
}

func TestEventURLWrapsPastMidnight(t *testing.T) {
	w := Window{
		StartHour: 22,
		EndHour:   0,
		Members:   []string{"ana", "pac"},
		Period:    PeriodLateNight,
	}
	date := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	u, err := url.Parse(EventURL(w, date))
	if err != nil {
		t.Fatalf("unparsable URL: %v", err)
	}

	// A window ending at midnight spills into the next day (and here,
	// the next year).
	if got := u.Query().Get("dates"); got != "20251231T220000Z/20260101T000000Z" {
		t.Errorf("dates = %q, want 20251231T220000Z/20260101T000000Z", got)
	}
}
