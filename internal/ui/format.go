package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/crewsync/crewsync/internal/collab"
	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/schedule"
)

// formatPeriod renders a schedule period with its color.
func formatPeriod(p schedule.Period) string {
	switch p {
	case schedule.PeriodWork:
		return formatWork("work")
	case schedule.PeriodSleep:
		return formatSleep("sleep")
	}
	return formatAvailable("available")
}

// profileLines renders the personal profile block.
func profileLines(p member.Profile, now time.Time) []string {
	name := p.Name
	if name == "" {
		name = "(unnamed — run crewsync to set up your profile)"
	}

	info := p.Status.Info()
	period := schedule.Classify(p.LocalTime(now), p.WorkHours, p.SleepHours)

	lines := []string{
		formatHeader(name) + "  " + formatMuted(p.Timezone),
		fmt.Sprintf("  local time  %s", p.LocalTime(now).Format("15:04")),
		fmt.Sprintf("  status      %s %s", info.Icon, info.Label),
		fmt.Sprintf("  period      %s", formatPeriod(period)),
		fmt.Sprintf("  schedule    work %s, sleep %s", rangeOrUnset(p.WorkHours), rangeOrUnset(p.SleepHours)),
	}
	if preset := schedule.PresetFor(p.WorkHours, p.SleepHours); preset != nil {
		lines = append(lines, fmt.Sprintf("  preset      %s %s", preset.Emoji, preset.Name))
	}
	lines = append(lines, "  "+formatMuted(p.Status.RandomFlavor()))
	return lines
}

// memberLine renders a single roster row.
func memberLine(m member.Member, now time.Time) string {
	info := m.Status.Info()
	local := m.LocalTime(now).Format("15:04")
	period := schedule.Classify(m.LocalTime(now), m.WorkHours, m.SleepHours)

	return fmt.Sprintf("  %-20s %-8s %s  %s %-16s %s",
		truncate(m.Name, 20),
		m.Timezone,
		local,
		info.Icon,
		info.Label,
		formatPeriod(period),
	)
}

// windowLine renders a collaboration window row.
func windowLine(w collab.Window) string {
	span := formatWindow(fmt.Sprintf("%-18s", w.FormatHourSpan()))
	return fmt.Sprintf("  %s %s  %-14s %d available: %s",
		w.Period.Emoji(),
		span,
		w.Period,
		len(w.Members),
		strings.Join(w.Members, ", "),
	)
}

func rangeOrUnset(r string) string {
	if r == "" {
		return formatMuted("unset")
	}
	return r
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// teamCollaborators reduces the roster for the window finder, keeping
// roster order.
func teamCollaborators(team []member.Member) []collab.Participant {
	ps := make([]collab.Participant, len(team))
	for i, m := range team {
		ps[i] = m.Collaborator()
	}
	return ps
}

// separator returns a horizontal rule sized to the terminal.
func separator() string {
	width := termWidth()
	if width > 72 {
		width = 72
	}
	return formatMuted(strings.Repeat("─", width))
}
