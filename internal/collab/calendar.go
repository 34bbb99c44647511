package collab

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const calendarBase = "https://calendar.google.com/calendar/render"

// EventURL builds a calendar event-creation link for the window on the
// given date. The event runs over the window's UTC hours; a window that
// ends at or before its start hour spills into the next day. This only
// constructs the URL — opening it is left to the platform.
func EventURL(w Window, date time.Time) string {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := day.Add(time.Duration(w.StartHour) * time.Hour)
	end := day.Add(time.Duration(w.EndHour) * time.Hour)
	if w.EndHour <= w.StartHour {
		end = end.AddDate(0, 0, 1)
	}

	const stamp = "20060102T150405Z"
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", fmt.Sprintf("Team sync (%s)", w.Period))
	params.Set("dates", start.Format(stamp)+"/"+end.Format(stamp))
	params.Set("details", "Available: "+strings.Join(w.Members, ", "))

	return calendarBase + "?" + params.Encode()
}
