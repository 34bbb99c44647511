package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewsync/crewsync/internal/share"
	"github.com/crewsync/crewsync/internal/state"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeImport:
		return m.handleImportKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	team := m.svc.Team()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.setMode(ModeHelp, "help requested")
		if err := m.svc.SetShowHelp(true); err != nil {
			LogError("persist show help", err)
		}
		return m, nil

	// Navigation
	case "j", "down":
		if m.cursor < len(team)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "t":
		next, err := m.svc.ToggleTheme()
		if err != nil {
			return m.withStatus("Error: " + err.Error()), statusClearCmd()
		}
		m.styles = NewStyles(loadTheme(m.svc, m.config))
		m = m.withStatus(fmt.Sprintf("Theme: %s", next))
		return m, statusClearCmd()

	case "p":
		m.openProfileForm()
		m.setMode(ModeForm, "edit profile")
		return m, nil

	case "a":
		m.openAddForm()
		m.setMode(ModeForm, "add member")
		return m, nil

	case "e", "enter":
		if len(team) == 0 {
			return m, nil
		}
		m.openEditForm(team[m.cursor])
		m.setMode(ModeForm, "edit member")
		return m, nil

	case "d", "x":
		if len(team) == 0 {
			return m, nil
		}
		sel := team[m.cursor]
		m.confirmID = sel.ID
		m.confirmMessage = fmt.Sprintf("Remove %s from the roster?", sel.Name)
		m.setMode(ModeConfirm, "confirm delete")
		return m, nil

	case "i":
		m.importInput.SetValue("")
		m.importInput.Focus()
		m.setMode(ModeImport, "import share string")
		return m, nil

	case "s":
		p := m.svc.Profile()
		if p.Name == "" {
			m = m.withStatus("Set up your profile first (p)")
			return m, statusClearCmd()
		}
		if err := clipboard.WriteAll(share.EncodeProfile(p)); err != nil {
			m = m.withStatus("Clipboard error: " + err.Error())
			return m, statusClearCmd()
		}
		m = m.withStatus("Share string copied")
		return m, statusClearCmd()

	case "S":
		if err := clipboard.WriteAll(share.EncodeSnapshot(m.svc.Snapshot())); err != nil {
			m = m.withStatus("Clipboard error: " + err.Error())
			return m, statusClearCmd()
		}
		m = m.withStatus("App share string copied")
		return m, statusClearCmd()
	}

	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?", "esc", "enter":
		m.setMode(ModeNormal, "help dismissed")
		if err := m.svc.SetShowHelp(false); err != nil {
			LogError("persist show help", err)
		}
		// First run drops straight into the profile form.
		if m.svc.Profile().Name == "" {
			m.openProfileForm()
			m.setMode(ModeForm, "first run profile setup")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setMode(ModeNormal, "form cancelled")
		return m, nil

	case "tab", "down":
		m.form = m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form = m.form.prev()
		return m, nil

	case "ctrl+t":
		m.form = m.form.cycleStatus()
		return m, nil
	case "ctrl+a":
		m.form = m.form.toggleAuto()
		return m, nil

	case "enter":
		if m.form.focus < fieldCount-1 {
			m.form = m.form.next()
			return m, nil
		}
		return m.submitForm()
	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	p := m.form.profile()

	var err error
	switch m.formTarget {
	case formTargetProfile:
		if p.Name == "" {
			m = m.withStatus("Name cannot be empty")
			return m, statusClearCmd()
		}
		err = m.svc.SetProfile(p)
	case formTargetNew:
		_, err = m.svc.AddMember(p)
	case formTargetEdit:
		_, err = m.svc.UpdateMember(m.formEditID, updateFromProfile(p))
	}
	if err != nil {
		m = m.withStatus("Error: " + err.Error())
		return m, statusClearCmd()
	}

	m.setMode(ModeNormal, "form saved")
	m = m.withFlavor().withStatus("Saved " + p.Name)
	return m, statusClearCmd()
}

func (m Model) handleImportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setMode(ModeNormal, "import cancelled")
		return m, nil

	case "enter":
		code := strings.TrimSpace(m.importInput.Value())
		switch {
		case strings.HasPrefix(code, share.SnapshotScheme):
			snap := share.DecodeSnapshot(code)
			if snap == nil {
				m = m.withStatus("Malformed app share string")
				return m, statusClearCmd()
			}
			if err := m.svc.Replace(*snap); err != nil {
				m = m.withStatus("Error: " + err.Error())
				return m, statusClearCmd()
			}
			m.styles = NewStyles(loadTheme(m.svc, m.config))
			m.cursor = 0
			m.setMode(ModeNormal, "app state imported")
			m = m.withFlavor().withStatus(fmt.Sprintf("Imported %s and %d team members", snap.Profile.Name, len(snap.Team)))
			return m, statusClearCmd()

		case strings.HasPrefix(code, share.ProfileScheme):
			added := share.DecodeMember(code)
			if added == nil {
				m = m.withStatus("Malformed share string")
				return m, statusClearCmd()
			}
			if err := m.svc.ImportMember(*added); err != nil {
				m = m.withStatus("Error: " + err.Error())
				return m, statusClearCmd()
			}
			m.setMode(ModeNormal, "member imported")
			m = m.withStatus("Imported " + added.Name)
			return m, statusClearCmd()

		default:
			m = m.withStatus("Unrecognized share string")
			return m, statusClearCmd()
		}
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := m.svc.RemoveMember(m.confirmID); err != nil && err != state.ErrMemberNotFound {
			m = m.withStatus("Error: " + err.Error())
			m.setMode(ModeNormal, "delete failed")
			return m, statusClearCmd()
		}
		if team := m.svc.Team(); m.cursor >= len(team) && m.cursor > 0 {
			m.cursor = len(team) - 1
		}
		m.setMode(ModeNormal, "member removed")
		m = m.withStatus("Removed")
		return m, statusClearCmd()

	case "n", "esc":
		m.setMode(ModeNormal, "delete cancelled")
		return m, nil
	}
	return m, nil
}

// setMode switches the interaction mode and logs the transition.
func (m *Model) setMode(to Mode, reason string) {
	LogModeChange(m.mode, to, reason)
	m.mode = to
}
