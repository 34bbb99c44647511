package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/state"
)

// Form field indexes.
const (
	fieldName = iota
	fieldTimezone
	fieldWork
	fieldSleep
	fieldAvatar
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Timezone",
	"Work hours",
	"Sleep hours",
	"Avatar",
}

// memberForm is the add/edit form: five text inputs plus a status picker
// and the auto-status toggle.
type memberForm struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	statusIdx  int  // Index into member.AllStatuses
	autoStatus bool // Derive status from the schedule
}

func newMemberForm(p member.Profile) memberForm {
	f := memberForm{autoStatus: p.AutoStatus}

	placeholders := [fieldCount]string{"Ana", "UTC+2", "9-17", "23-7", "🦊"}
	values := [fieldCount]string{p.Name, p.Timezone, p.WorkHours, p.SleepHours, p.Avatar}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 24
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()

	for i, st := range member.AllStatuses {
		if st == p.Status {
			f.statusIdx = i
		}
	}
	return f
}

// update forwards the message to the focused input.
func (f memberForm) update(msg tea.Msg) (memberForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// next moves focus to the following field, wrapping around.
func (f memberForm) next() memberForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

// prev moves focus to the previous field, wrapping around.
func (f memberForm) prev() memberForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

// cycleStatus advances the status picker.
func (f memberForm) cycleStatus() memberForm {
	f.statusIdx = (f.statusIdx + 1) % len(member.AllStatuses)
	return f
}

// toggleAuto flips the auto-status toggle.
func (f memberForm) toggleAuto() memberForm {
	f.autoStatus = !f.autoStatus
	return f
}

// openProfileForm opens the form pre-filled with the personal profile.
func (m *Model) openProfileForm() {
	m.form = newMemberForm(m.svc.Profile())
	m.formTarget = formTargetProfile
}

// openAddForm opens a blank form seeded with the standard schedule.
func (m *Model) openAddForm() {
	p := state.DefaultSnapshot().Profile
	m.form = newMemberForm(p)
	m.formTarget = formTargetNew
}

// openEditForm opens the form pre-filled with a roster member.
func (m *Model) openEditForm(target member.Member) {
	m.form = newMemberForm(target.Profile)
	m.formTarget = formTargetEdit
	m.formEditID = target.ID
}

// updateFromProfile lifts a full profile into a member update.
func updateFromProfile(p member.Profile) member.Update {
	return member.Update{
		Name:       &p.Name,
		Timezone:   &p.Timezone,
		Status:     &p.Status,
		WorkHours:  &p.WorkHours,
		SleepHours: &p.SleepHours,
		AutoStatus: &p.AutoStatus,
		Avatar:     &p.Avatar,
	}
}

// profile builds a Profile from the form values.
func (f memberForm) profile() member.Profile {
	return member.Profile{
		Name:       strings.TrimSpace(f.inputs[fieldName].Value()),
		Timezone:   strings.TrimSpace(f.inputs[fieldTimezone].Value()),
		Status:     member.AllStatuses[f.statusIdx],
		WorkHours:  strings.TrimSpace(f.inputs[fieldWork].Value()),
		SleepHours: strings.TrimSpace(f.inputs[fieldSleep].Value()),
		AutoStatus: f.autoStatus,
		Avatar:     strings.TrimSpace(f.inputs[fieldAvatar].Value()),
	}
}
