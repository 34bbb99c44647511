package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crewsync/crewsync/internal/collab"
	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/schedule"
)

const topWindowCount = 3

// View renders the dashboard.
func (m Model) View() string {
	if m.width > 0 && m.width < 40 {
		return "Terminal too small"
	}

	switch m.mode {
	case ModeHelp:
		return m.renderOverlay(m.renderHelp())
	case ModeForm:
		return m.renderOverlay(m.renderForm())
	case ModeImport:
		return m.renderOverlay(m.renderImport())
	case ModeConfirm:
		return m.renderOverlay(m.renderConfirm())
	}

	sections := []string{
		m.renderHeader(),
		m.renderProfilePanel(),
		m.renderRosterPanel(),
		m.renderWindowsPanel(),
		m.renderFooter(),
	}
	return m.styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("⚡ crewsync")
	clock := m.styles.ClockStyle.Render(m.now.Format("15:04:05") + " UTC")

	gap := 2
	if m.width > 0 {
		gap = m.width - lipgloss.Width(title) - lipgloss.Width(clock) - 4
		if gap < 2 {
			gap = 2
		}
	}
	return title + strings.Repeat(" ", gap) + clock
}

func (m Model) renderProfilePanel() string {
	p := m.svc.Profile()
	if p.Name == "" {
		return m.styles.PanelStyle.Render(m.styles.MutedStyle.Render("No profile yet — press p to set one up"))
	}

	info := p.Status.Info()
	local := p.LocalTime(m.now)
	period := schedule.Classify(local, p.WorkHours, p.SleepHours)

	var b strings.Builder
	b.WriteString(m.styles.PanelTitleStyle.Render(avatarOr(p.Avatar, "🧑") + " " + p.Name))
	b.WriteString(m.styles.MutedStyle.Render("  " + p.Timezone))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s %s  %s",
		local.Format("15:04"),
		info.Icon,
		info.Label,
		m.periodStyle(period).Render(periodLabel(period)),
	))
	if p.AutoStatus {
		b.WriteString(m.styles.MutedStyle.Render("  ·  auto"))
	}
	if m.flavor != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedStyle.Render(m.flavor))
	}
	return m.styles.PanelStyle.Render(b.String())
}

func (m Model) renderRosterPanel() string {
	team := m.svc.Team()

	var b strings.Builder
	b.WriteString(m.styles.PanelTitleStyle.Render(fmt.Sprintf("Team (%d)", len(team))))
	b.WriteString("\n")

	if len(team) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("Nobody here yet. Press a to add or i to import."))
		return m.styles.PanelStyle.Render(b.String())
	}

	for i, mem := range team {
		line := m.rosterRow(mem)
		if i == m.cursor {
			line = m.styles.RowSelectedStyle.Render("▸ " + line)
		} else {
			line = m.styles.RowStyle.Render("  " + line)
		}
		b.WriteString(line)
		if i < len(team)-1 {
			b.WriteString("\n")
		}
	}
	return m.styles.PanelStyle.Render(b.String())
}

func (m Model) rosterRow(mem member.Member) string {
	info := mem.Status.Info()
	local := mem.LocalTime(m.now)
	period := schedule.Classify(local, mem.WorkHours, mem.SleepHours)

	return fmt.Sprintf("%s %-16s %-8s %s  %s %-16s %s",
		avatarOr(mem.Avatar, "👤"),
		truncateName(mem.Name, 16),
		mem.Timezone,
		local.Format("15:04"),
		info.Icon,
		info.Label,
		m.periodStyle(period).Render(periodLabel(period)),
	)
}

func (m Model) renderWindowsPanel() string {
	snap := m.svc.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.PanelTitleStyle.Render("Collaboration windows"))
	b.WriteString(m.styles.MutedStyle.Render("  (UTC)"))
	b.WriteString("\n")

	if len(snap.Team) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("Windows need at least two people."))
		return m.styles.PanelStyle.Render(b.String())
	}

	windows := collab.FindWindows(snap.Profile.Collaborator(), teamCollaborators(snap.Team))
	windows = collab.TopWindows(windows, topWindowCount)
	if len(windows) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("No overlapping waking hours today."))
		return m.styles.PanelStyle.Render(b.String())
	}

	for i, w := range windows {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s",
			w.Period.Emoji(),
			m.styles.WindowStyle.Render(w.FormatHourSpan()),
			w.Period,
			m.styles.MutedStyle.Render(strings.Join(w.Members, ", ")),
		))
		if i < len(windows)-1 {
			b.WriteString("\n")
		}
	}
	return m.styles.PanelStyle.Render(b.String())
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		return m.styles.StatusStyle.Render(m.statusMsg)
	}
	return m.styles.HelpStyle.Render("j/k move · a add · e edit · d delete · i import · s share · t theme · ? help · q quit")
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayTitleStyle.Render("crewsync"))
	b.WriteString("\n\n")
	b.WriteString("Keep your team's waking hours in one place and find the\n")
	b.WriteString("windows when enough of you are awake to collaborate.\n\n")

	keys := [][2]string{
		{"j/k", "move through the roster"},
		{"p", "edit your profile"},
		{"a", "add a team member"},
		{"e/enter", "edit the selected member"},
		{"d", "remove the selected member"},
		{"i", "import a share string"},
		{"s", "copy your share string"},
		{"S", "copy the full app share string"},
		{"t", "toggle dark/light theme"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.PanelTitleStyle.Render(fmt.Sprintf("%-8s", k[0])),
			k[1],
		))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedStyle.Render("esc to close"))
	return b.String()
}

func (m Model) renderForm() string {
	titles := map[formTarget]string{
		formTargetProfile: "Your profile",
		formTargetNew:     "Add member",
		formTargetEdit:    "Edit member",
	}

	var b strings.Builder
	b.WriteString(m.styles.OverlayTitleStyle.Render(titles[m.formTarget]))
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		label := m.styles.FormLabelStyle
		if i == m.form.focus {
			label = m.styles.FormLabelFocusStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	status := member.AllStatuses[m.form.statusIdx]
	info := status.Info()
	b.WriteString("\n")
	b.WriteString(m.styles.FormLabelStyle.Render("Status"))
	b.WriteString(fmt.Sprintf("%s %s", info.Icon, info.Label))
	b.WriteString(m.styles.MutedStyle.Render("  (ctrl+t to cycle)"))
	b.WriteString("\n")
	b.WriteString(m.styles.FormLabelStyle.Render("Auto status"))
	b.WriteString(onOff(m.form.autoStatus))
	b.WriteString(m.styles.MutedStyle.Render("  (ctrl+a to toggle)"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedStyle.Render("tab next field · enter save · esc cancel"))
	return b.String()
}

func (m Model) renderImport() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayTitleStyle.Render("Import"))
	b.WriteString("\n\n")
	b.WriteString("Paste a share string. CrewSync:// adds a teammate,\n")
	b.WriteString("CrewSyncApp:// replaces the whole app state.\n\n")
	b.WriteString(m.importInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedStyle.Render("enter import · esc cancel"))
	return b.String()
}

func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.WarningStyle.Render(m.confirmMessage))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedStyle.Render("y remove · n cancel"))
	return b.String()
}

// renderOverlay centers boxed content in the terminal.
func (m Model) renderOverlay(content string) string {
	box := m.styles.OverlayStyle.Render(content)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) periodStyle(p schedule.Period) lipgloss.Style {
	switch p {
	case schedule.PeriodWork:
		return m.styles.WorkStyle
	case schedule.PeriodSleep:
		return m.styles.SleepStyle
	}
	return m.styles.AvailableStyle
}

func periodLabel(p schedule.Period) string {
	switch p {
	case schedule.PeriodWork:
		return "work"
	case schedule.PeriodSleep:
		return "sleep"
	}
	return "available"
}

func avatarOr(avatar, fallback string) string {
	if avatar == "" {
		return fallback
	}
	return avatar
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// teamCollaborators reduces the roster for the window finder, keeping
// roster order.
func teamCollaborators(team []member.Member) []collab.Participant {
	ps := make([]collab.Participant, len(team))
	for i, mem := range team {
		ps[i] = mem.Collaborator()
	}
	return ps
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
