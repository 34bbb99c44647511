// Package tui provides the terminal dashboard for crewsync.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewsync/crewsync/internal/config"
	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/state"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
	ModeForm    // Adding or editing a member via the form
	ModeImport  // Pasting a share string
	ModeConfirm // Confirming a member delete
)

// formTarget says what the open form edits.
type formTarget int

const (
	formTargetProfile formTarget = iota
	formTargetNew
	formTargetEdit
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	svc    *state.Service
	config *config.Config

	// Theme and styles
	styles *Styles

	// State
	mode   Mode
	cursor int       // Selected roster row
	now    time.Time // Last clock tick, UTC

	// Form state
	form       memberForm
	formTarget formTarget
	formEditID string // Member id when formTarget is formTargetEdit

	// Import state
	importInput textinput.Model

	// Confirm state
	confirmID      string
	confirmMessage string

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Flavor line on the profile panel, re-rolled when the status changes
	flavor       string
	flavorStatus member.Status
}

// New creates a new TUI model.
func New(svc *state.Service, cfg *config.Config) *Model {
	importInput := textinput.New()
	importInput.Placeholder = "CrewSync://..."
	importInput.CharLimit = 512
	importInput.Width = 60

	m := &Model{
		svc:         svc,
		config:      cfg,
		styles:      NewStyles(loadTheme(svc, cfg)),
		mode:        ModeNormal,
		now:         time.Now().UTC(),
		importInput: importInput,
	}

	if svc.Snapshot().ShowHelp || svc.Profile().Name == "" {
		m.mode = ModeHelp
	}
	if svc.Profile().Name == "" {
		m.openProfileForm()
	}
	*m = m.withFlavor()

	return m
}

// withFlavor re-rolls the profile flavor line when the status changed
// since the last roll. Same status keeps the same line between ticks.
func (m Model) withFlavor() Model {
	s := m.svc.Profile().Status
	if m.flavor == "" || s != m.flavorStatus {
		m.flavorStatus = s
		m.flavor = s.RandomFlavor()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// refreshInterval returns the clock tick interval from config.
func (m Model) refreshInterval() time.Duration {
	seconds := m.config.UI.RefreshSeconds
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval(), func(t time.Time) tea.Msg {
		return clockTickMsg{Time: t.UTC()}
	})
}

// Run starts the TUI.
func Run(svc *state.Service, cfg *config.Config) error {
	return RunWithDebug(svc, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(svc *state.Service, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(svc, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
