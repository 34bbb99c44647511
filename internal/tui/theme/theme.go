// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Panels, selected roster row
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Hints, sleeping members
	Accent      string `toml:"accent"`       // Title, borders, key hints
	Work        string `toml:"work"`         // Members in work hours
	Available   string `toml:"available"`    // Members outside work and sleep
	Sleep       string `toml:"sleep"`        // Members in sleep hours
	Window      string `toml:"window"`       // Collaboration window highlight
	Warning     string `toml:"warning"`      // Errors, delete confirmation
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Available lists the names of the embedded themes.
func Available() []string {
	return []string{"dark", "light"}
}

// IsAvailable reports whether a theme with the given name exists.
func IsAvailable(name string) bool {
	for _, n := range Available() {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// Load loads a theme by name from embedded files.
// Falls back to dark if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "dark"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "dark" {
			return Load("dark")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// applyDefaults fills any missing colors from the dark palette so a
// partial theme file still renders.
func (t *Theme) applyDefaults() {
	def := darkDefaults()
	if t.Bg == "" {
		t.Bg = def.Bg
	}
	if t.BgHighlight == "" {
		t.BgHighlight = def.BgHighlight
	}
	if t.Fg == "" {
		t.Fg = def.Fg
	}
	if t.FgMuted == "" {
		t.FgMuted = def.FgMuted
	}
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	if t.Work == "" {
		t.Work = def.Work
	}
	if t.Available == "" {
		t.Available = def.Available
	}
	if t.Sleep == "" {
		t.Sleep = def.Sleep
	}
	if t.Window == "" {
		t.Window = def.Window
	}
	if t.Warning == "" {
		t.Warning = def.Warning
	}
}

func darkDefaults() Theme {
	return Theme{
		Name:        "dark",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Work:        "#a6e3a1",
		Available:   "#f9e2af",
		Sleep:       "#6c7086",
		Window:      "#cba6f7",
		Warning:     "#f38ba8",
	}
}
