package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockTickMsg fires on the refresh interval and drives the clock and
// the auto-status pass.
type clockTickMsg struct {
	Time time.Time
}

// clearStatusMsg clears an expired status message.
type clearStatusMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockTickMsg:
		m.now = msg.Time
		if _, err := m.svc.Tick(msg.Time); err != nil {
			LogError("tick", err)
			return m.withStatus("Error: "+err.Error()), m.tickCmd()
		}
		return m.withFlavor(), m.tickCmd()

	case clearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward everything else to the active text input.
	switch m.mode {
	case ModeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	case ModeImport:
		var cmd tea.Cmd
		m.importInput, cmd = m.importInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// withStatus sets a temporary status message.
func (m Model) withStatus(msg string) Model {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(3 * time.Second)
	return m
}

// statusClearCmd schedules the status message cleanup.
func statusClearCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
