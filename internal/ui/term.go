package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Work/deepwork: bold cyan for focus
	colorWork = color.New(color.FgCyan, color.Bold)

	// Sleep: dim/grey for offline
	colorSleep = color.New(color.FgWhite, color.Faint)

	// Available: green for go
	colorAvailable = color.New(color.FgGreen)

	// Windows: yellow to make them pop
	colorWindow = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatWork formats text for the work period.
func formatWork(s string) string {
	return colorWork.Sprint(s)
}

// formatSleep formats text for the sleep period.
func formatSleep(s string) string {
	return colorSleep.Sprint(s)
}

// formatAvailable formats text for the available period.
func formatAvailable(s string) string {
	return colorAvailable.Sprint(s)
}

// formatWindow formats a collaboration window line.
func formatWindow(s string) string {
	return colorWindow.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
