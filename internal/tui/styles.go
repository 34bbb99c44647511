package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/crewsync/crewsync/internal/config"
	"github.com/crewsync/crewsync/internal/state"
	"github.com/crewsync/crewsync/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	theme *theme.Theme

	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color

	// App container
	AppStyle lipgloss.Style

	// Header
	TitleStyle lipgloss.Style
	ClockStyle lipgloss.Style

	// Panels
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style

	// Roster rows
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style

	// Schedule period colors
	WorkStyle      lipgloss.Style
	AvailableStyle lipgloss.Style
	SleepStyle     lipgloss.Style

	// Collaboration windows
	WindowStyle lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	HelpStyle    lipgloss.Style
	WarningStyle lipgloss.Style
	MutedStyle   lipgloss.Style

	// Form
	FormLabelStyle      lipgloss.Style
	FormLabelFocusStyle lipgloss.Style

	// Overlays (help, form, import, confirm)
	OverlayStyle      lipgloss.Style
	OverlayTitleStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{theme: t}

	s.colorBg = theme.Color(t.Bg)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)

	s.AppStyle = lipgloss.NewStyle().
		Padding(0, 1)

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.ClockStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)

	s.PanelTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.RowStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.RowSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(theme.Color(t.BgHighlight)).
		Bold(true)

	s.WorkStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Work))

	s.AvailableStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Available))

	s.SleepStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Sleep))

	s.WindowStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Window)).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Warning)).
		Bold(true)

	s.MutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.FormLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Width(12)

	s.FormLabelFocusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Width(12)

	s.OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(1, 2)

	s.OverlayTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	return s
}

// loadTheme resolves the theme name: the stored snapshot wins; the
// config value only applies when the snapshot has none.
func loadTheme(svc *state.Service, cfg *config.Config) *theme.Theme {
	name := string(svc.Snapshot().Theme)
	if name == "" {
		name = cfg.UI.Theme
	}
	t, err := theme.Load(name)
	if err != nil {
		t, _ = theme.Load("dark")
	}
	return t
}
